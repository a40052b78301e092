package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmon/internal/domain"
	"github.com/hamed0406/endpointmon/internal/notify"
)

type AlerterConfig struct {
	AlertOnRecovery bool
	Cooldown        time.Duration
}

// Alerter watches cycle results for state transitions and pushes a
// notification when an endpoint flips. Cooldown only suppresses repeated
// DOWN alerts; recoveries bypass it. Sends are best effort and never
// affect the cycle.
type Alerter struct {
	logger   *zap.Logger
	notifier notify.Notifier
	cfg      AlerterConfig

	mu     sync.Mutex
	states map[string]*endpointState
	now    func() time.Time
}

type endpointState struct {
	known      bool
	up         bool
	lastSentAt time.Time
}

func NewAlerter(logger *zap.Logger, notifier notify.Notifier, cfg AlerterConfig) *Alerter {
	return &Alerter{
		logger:   logger,
		notifier: notifier,
		cfg:      cfg,
		states:   make(map[string]*endpointState),
		now:      time.Now,
	}
}

func (a *Alerter) Observe(ctx context.Context, results []domain.ProbeResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	for _, r := range results {
		st := a.states[r.Name]
		if st == nil {
			st = &endpointState{}
			a.states[r.Name] = st
		}

		stateChanged := !st.known || st.up != r.Up()

		cooled := true
		if !st.lastSentAt.IsZero() {
			cooled = now.Sub(st.lastSentAt) >= a.cfg.Cooldown
		}

		downAlert := stateChanged && !r.Up() && cooled
		recoveryAlert := stateChanged && r.Up() && st.known && a.cfg.AlertOnRecovery

		if downAlert || recoveryAlert {
			title := "🔴 Endpoint DOWN"
			if r.Up() {
				title = "🟢 Endpoint RECOVERED"
			}
			text := fmt.Sprintf(
				"Endpoint: %s\nDomain: %s\nElapsed: %.3fs\nReason: %s",
				r.Name, r.Domain, r.Elapsed, r.Reason,
			)
			if err := a.notifier.Send(ctx, title, text); err != nil {
				a.logger.Warn("alert_send_error",
					zap.String("endpoint", r.Name),
					zap.Error(err),
				)
			} else {
				st.lastSentAt = now
			}
		}

		st.known = true
		st.up = r.Up()
	}
}
