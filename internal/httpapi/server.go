package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointmon/internal/domain"
	"github.com/hamed0406/endpointmon/internal/report"
	"github.com/hamed0406/endpointmon/internal/stats"
)

// Server exposes a read-only diagnostic API over the monitor's state:
// the cumulative availability table, the latest cycle report, and the
// configured endpoints. It holds no state of its own.
type Server struct {
	Logger    *zap.Logger
	Stats     *stats.Aggregator
	Latest    *report.Latest
	Endpoints []domain.Endpoint
}

func NewServer(l *zap.Logger, agg *stats.Aggregator, latest *report.Latest, eps []domain.Endpoint) *Server {
	return &Server{Logger: l, Stats: agg, Latest: latest, Endpoints: eps}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/stats", s.handleStats)
	r.Get("/api/cycle", s.handleCycle)
	r.Get("/api/endpoints", s.handleEndpoints)

	return r
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Stats.Snapshot())
}

func (s *Server) handleCycle(w http.ResponseWriter, r *http.Request) {
	rep := s.Latest.Get()
	if rep == nil {
		http.Error(w, "no cycle completed yet", http.StatusNotFound)
		return
	}
	writeJSON(w, rep)
}

type endpointView struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Method string `json:"method"`
	Domain string `json:"domain"`
}

func (s *Server) handleEndpoints(w http.ResponseWriter, r *http.Request) {
	// headers and bodies stay out of the API; they may carry credentials
	out := make([]endpointView, 0, len(s.Endpoints))
	for _, e := range s.Endpoints {
		out = append(out, endpointView{
			Name:   e.Name,
			URL:    e.URL,
			Method: e.RequestMethod(),
			Domain: domain.ExtractDomain(e.URL),
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
