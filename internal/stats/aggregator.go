package stats

import (
	"sync"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Aggregator owns the cumulative per-domain availability table. It is
// the only writer; entries are created on first observation and never
// deleted or reset while the process runs. Record is called once per
// probe result, possibly from concurrent probe goroutines.
type Aggregator struct {
	mu    sync.RWMutex
	order []string
	stats map[string]domain.DomainStats
}

func New() *Aggregator {
	return &Aggregator{
		stats: make(map[string]domain.DomainStats),
	}
}

func (a *Aggregator) Record(dom string, up bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, seen := a.stats[dom]
	if !seen {
		a.order = append(a.order, dom)
	}
	s.TotalCount++
	if up {
		s.UpCount++
	}
	a.stats[dom] = s
}

// Snapshot returns a read-consistent copy of the table in first-seen
// order. Callers get values, never references into the live map.
func (a *Aggregator) Snapshot() []domain.DomainAvailability {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.DomainAvailability, 0, len(a.order))
	for _, dom := range a.order {
		s := a.stats[dom]
		out = append(out, domain.DomainAvailability{
			Domain:     dom,
			UpCount:    s.UpCount,
			TotalCount: s.TotalCount,
			Percent:    s.Availability(),
		})
	}
	return out
}
