package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/endpointmon/internal/config"
	"github.com/hamed0406/endpointmon/internal/httpapi"
	"github.com/hamed0406/endpointmon/internal/logging"
	"github.com/hamed0406/endpointmon/internal/notify"
	"github.com/hamed0406/endpointmon/internal/probe"
	"github.com/hamed0406/endpointmon/internal/report"
	"github.com/hamed0406/endpointmon/internal/scheduler"
	"github.com/hamed0406/endpointmon/internal/stats"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: monitor <endpoints.yaml>")
		os.Exit(2)
	}

	cfg := config.FromEnv()

	eps, err := config.LoadEndpoints(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogConsole)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := stats.New()
	checker := probe.NewHTTPChecker(cfg.CheckTimeout, cfg.LatencyBudget)

	latest := report.NewLatest()
	reporters := report.Multi{
		&report.Console{Out: os.Stdout},
		&report.Logs{Logger: logger},
		latest,
	}

	var alerter *scheduler.Alerter
	if slack := notify.NewSlack(cfg.SlackWebhook); slack != nil {
		alerter = scheduler.NewAlerter(logger, notify.Multi{slack}, scheduler.AlerterConfig{
			AlertOnRecovery: cfg.AlertRecovery,
			Cooldown:        cfg.AlertCooldown,
		})
	}

	if cfg.APIAddr != "" {
		api := httpapi.NewServer(logger, agg, latest, eps)
		srv := &http.Server{Addr: cfg.APIAddr, Handler: api.Router()}
		go func() {
			logger.Info("api_listen", zap.String("addr", cfg.APIAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("api_error", zap.Error(err))
			}
		}()
		go func() {
			<-ctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	runner := scheduler.NewRunner(logger, checker, agg, eps, cfg.Interval, cfg.Concurrency, reporters, alerter)
	runner.Run(ctx)

	fmt.Println("\nMonitoring stopped.")
}
