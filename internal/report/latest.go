package report

import (
	"sync"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Latest retains the most recent cycle report for the stats API to
// serve. It is a Reporter like any other sink.
type Latest struct {
	mu sync.RWMutex
	r  *domain.CycleReport
}

func NewLatest() *Latest {
	return &Latest{}
}

func (l *Latest) Report(r domain.CycleReport) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := r
	cp.Domains = append([]domain.DomainAvailability(nil), r.Domains...)
	cp.Results = append([]domain.ProbeResult(nil), r.Results...)
	l.r = &cp
	return nil
}

// Get returns the last stored report, or nil before the first cycle.
func (l *Latest) Get() *domain.CycleReport {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.r == nil {
		return nil
	}
	cp := *l.r
	cp.Domains = append([]domain.DomainAvailability(nil), l.r.Domains...)
	cp.Results = append([]domain.ProbeResult(nil), l.r.Results...)
	return &cp
}
