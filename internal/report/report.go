package report

import (
	"go.uber.org/multierr"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Reporter receives the full payload of one finished cycle. Reporters
// keep no state between calls and must treat the report as read-only.
type Reporter interface {
	Report(r domain.CycleReport) error
}

// Multi fans a report out to every sink, collecting all failures.
type Multi []Reporter

func (m Multi) Report(r domain.CycleReport) error {
	var err error
	for _, rep := range m {
		if rep == nil {
			continue
		}
		err = multierr.Append(err, rep.Report(r))
	}
	return err
}
