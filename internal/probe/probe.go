package probe

import (
	"context"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// Checker performs a single probe of one endpoint. Every outcome,
// including timeouts and transport failures, is a ProbeResult — probes
// never return errors.
type Checker interface {
	Check(ctx context.Context, ep domain.Endpoint) domain.ProbeResult
}
