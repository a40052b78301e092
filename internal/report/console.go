package report

import (
	"fmt"
	"io"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Console renders a cycle report as the human-readable summary: the
// cumulative availability table followed by this cycle's pass/fail lines.
type Console struct {
	Out io.Writer
}

func (c *Console) Report(r domain.CycleReport) error {
	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(c.Out, format, args...)
		}
	}

	p("\n--- %s ---\n", r.Timestamp)
	for _, d := range r.Domains {
		p("%s has %v%% availability (UP: %d, Total: %d)\n", d.Domain, d.Percent, d.UpCount, d.TotalCount)
	}

	p("\nCurrent check cycle results:\n")
	for _, res := range r.Results {
		mark := "✓"
		if !res.Up() {
			mark = "✗"
		}
		if res.Reason != "" {
			p("%s %s - %.3fs - %s\n", mark, res.Name, res.Elapsed, res.Reason)
		} else {
			p("%s %s - %.3fs\n", mark, res.Name, res.Elapsed)
		}
	}
	return err
}
