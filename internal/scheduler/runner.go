package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmon/internal/domain"
	"github.com/hamed0406/endpointmon/internal/probe"
	"github.com/hamed0406/endpointmon/internal/report"
	"github.com/hamed0406/endpointmon/internal/stats"
)

const timestampLayout = "2006-01-02 15:04:05"

// Runner drives the check loop: one cycle probes every endpoint, feeds
// the aggregator, and hands the cycle report to the reporters. Cycles
// start on a fixed cadence measured start-to-start; the sleep after a
// cycle is the interval minus what the cycle cost, so report timing does
// not drift with endpoint latency. A cycle slower than the interval is
// followed immediately by the next one.
type Runner struct {
	Logger      *zap.Logger
	Checker     probe.Checker
	Stats       *stats.Aggregator
	Endpoints   []domain.Endpoint
	Interval    time.Duration
	Concurrency int
	Reporters   report.Reporter
	Alerter     *Alerter

	now func() time.Time
}

func NewRunner(
	logger *zap.Logger,
	checker probe.Checker,
	agg *stats.Aggregator,
	endpoints []domain.Endpoint,
	interval time.Duration,
	concurrency int,
	reporters report.Reporter,
	alerter *Alerter,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Runner{
		Logger:      logger,
		Checker:     checker,
		Stats:       agg,
		Endpoints:   endpoints,
		Interval:    interval,
		Concurrency: concurrency,
		Reporters:   reporters,
		Alerter:     alerter,
		now:         time.Now,
	}
}

// Run loops until ctx is cancelled. Cancellation is recognized at the
// top of each cycle and during the inter-cycle sleep; an in-flight probe
// runs to its own deadline.
func (r *Runner) Run(ctx context.Context) {
	r.Logger.Info("monitor_started",
		zap.Int("endpoints", len(r.Endpoints)),
		zap.Duration("interval", r.Interval),
		zap.Int("concurrency", r.Concurrency),
	)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("monitor_stopped")
			return
		default:
		}

		cycleStart := r.now()
		results := r.RunCycle(ctx)

		rep := domain.CycleReport{
			Timestamp: r.now().Format(timestampLayout),
			Domains:   r.Stats.Snapshot(),
			Results:   results,
		}
		if r.Reporters != nil {
			if err := r.Reporters.Report(rep); err != nil {
				r.Logger.Warn("report_error", zap.Error(err))
			}
		}
		if r.Alerter != nil {
			r.Alerter.Observe(ctx, results)
		}

		// always measured from cycle start, never chained sleeps
		remaining := r.Interval - r.now().Sub(cycleStart)
		if remaining <= 0 {
			// expected whenever probing alone exceeds the interval
			r.Logger.Info("cycle_overran_interval",
				zap.Duration("interval", r.Interval),
				zap.Duration("overrun", -remaining),
			)
			continue
		}

		t := time.NewTimer(remaining)
		select {
		case <-ctx.Done():
			t.Stop()
			r.Logger.Info("monitor_stopped")
			return
		case <-t.C:
		}
	}
}

// RunCycle probes every endpoint once through a bounded pool and records
// each outcome into the aggregator. The returned slice is in descriptor
// order regardless of completion order. One endpoint failing never
// blocks the rest of the cycle.
func (r *Runner) RunCycle(ctx context.Context) []domain.ProbeResult {
	results := make([]domain.ProbeResult, len(r.Endpoints))

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	for i, ep := range r.Endpoints {
		i, ep := i, ep
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() { <-sem }()
			defer wg.Done()

			out := r.Checker.Check(ctx, ep)
			results[i] = out
			r.Stats.Record(out.Domain, out.Up())

			r.Logger.Debug("endpoint_probed",
				zap.String("name", out.Name),
				zap.String("domain", out.Domain),
				zap.String("status", string(out.Status)),
				zap.Float64("elapsed_seconds", out.Elapsed),
				zap.String("reason", out.Reason),
			)
		}()
	}

	wg.Wait()
	return results
}
