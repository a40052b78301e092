package report

import (
	"go.uber.org/zap"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Logs emits the cycle payload as structured log events.
type Logs struct {
	Logger *zap.Logger
}

func (l *Logs) Report(r domain.CycleReport) error {
	for _, d := range r.Domains {
		l.Logger.Info("domain_availability",
			zap.String("domain", d.Domain),
			zap.Int("up", d.UpCount),
			zap.Int("total", d.TotalCount),
			zap.Float64("percent", d.Percent),
		)
	}
	for _, res := range r.Results {
		l.Logger.Info("endpoint_checked",
			zap.String("name", res.Name),
			zap.String("domain", res.Domain),
			zap.String("status", string(res.Status)),
			zap.Float64("elapsed_seconds", res.Elapsed),
			zap.String("reason", res.Reason),
		)
	}
	return nil
}
