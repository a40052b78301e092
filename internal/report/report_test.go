package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hamed0406/endpointmon/internal/domain"
)

func sampleReport() domain.CycleReport {
	return domain.CycleReport{
		Timestamp: "2025-01-02 15:04:05",
		Domains: []domain.DomainAvailability{
			{Domain: "example.com", UpCount: 2, TotalCount: 3, Percent: 66.67},
			{Domain: "other.org", UpCount: 1, TotalCount: 1, Percent: 100},
		},
		Results: []domain.ProbeResult{
			{Name: "home", Domain: "example.com", Status: domain.StatusUp, Elapsed: 0.123},
			{Name: "api", Domain: "example.com", Status: domain.StatusDown, Elapsed: 0.5, Reason: "Timeout"},
		},
	}
}

func TestConsole_RendersCycle(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{Out: &buf}
	if err := c.Report(sampleReport()); err != nil {
		t.Fatalf("report: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"--- 2025-01-02 15:04:05 ---",
		"example.com has 66.67% availability (UP: 2, Total: 3)",
		"other.org has 100% availability (UP: 1, Total: 1)",
		"Current check cycle results:",
		"✓ home - 0.123s",
		"✗ api - 0.500s - Timeout",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// domain table order must follow the snapshot order
	if strings.Index(out, "example.com") > strings.Index(out, "other.org") {
		t.Fatalf("domain order not preserved:\n%s", out)
	}
}

func TestLatest_HoldsMostRecentReport(t *testing.T) {
	l := NewLatest()
	if l.Get() != nil {
		t.Fatal("want nil before the first cycle")
	}

	r := sampleReport()
	if err := l.Report(r); err != nil {
		t.Fatal(err)
	}

	got := l.Get()
	if got == nil || got.Timestamp != r.Timestamp || len(got.Results) != 2 {
		t.Fatalf("stored report wrong: %+v", got)
	}

	// callers must not be able to corrupt the stored copy
	got.Domains[0].UpCount = 99
	if l.Get().Domains[0].UpCount != 2 {
		t.Fatal("Get must return a copy")
	}
}

type erroring struct{ err error }

func (e *erroring) Report(domain.CycleReport) error { return e.err }

func TestMulti_CollectsAllErrors(t *testing.T) {
	e1 := errors.New("sink a")
	e2 := errors.New("sink b")
	var buf bytes.Buffer
	m := Multi{&erroring{err: e1}, &Console{Out: &buf}, nil, &erroring{err: e2}}

	err := m.Report(sampleReport())
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("want both sink errors, got: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("healthy sink must still receive the report")
	}
}
