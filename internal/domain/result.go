package domain

import "math"

type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// ProbeResult is the outcome of a single probe of one endpoint. Results
// live for one cycle only; cumulative state is kept per domain instead.
type ProbeResult struct {
	Name    string  `json:"name"`
	Domain  string  `json:"domain"`
	Status  Status  `json:"status"`
	Elapsed float64 `json:"elapsed_seconds"`
	Reason  string  `json:"reason,omitempty"`
}

func (r ProbeResult) Up() bool { return r.Status == StatusUp }

// DomainStats are the cumulative counters for one domain, never reset
// for the lifetime of the process. UpCount <= TotalCount always.
type DomainStats struct {
	UpCount    int `json:"up_count"`
	TotalCount int `json:"total_count"`
}

// Availability is the derived percentage, rounded to two decimals.
// A zero total cannot happen for a recorded domain; treat it as 0%.
func (s DomainStats) Availability() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	return math.Round(10000*float64(s.UpCount)/float64(s.TotalCount)) / 100
}

// DomainAvailability is one row of a report snapshot.
type DomainAvailability struct {
	Domain     string  `json:"domain"`
	UpCount    int     `json:"up_count"`
	TotalCount int     `json:"total_count"`
	Percent    float64 `json:"percentage"`
}

// CycleReport is the payload handed to every reporter after a cycle:
// the cumulative per-domain table in first-seen order plus this cycle's
// results in descriptor order.
type CycleReport struct {
	Timestamp string               `json:"timestamp"`
	Domains   []DomainAvailability `json:"domains"`
	Results   []ProbeResult        `json:"results"`
}
