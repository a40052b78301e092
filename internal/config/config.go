package config

import (
	"os"
	"strconv"
	"time"
)

type Settings struct {
	APIAddr       string        // stats API bind address; empty disables the API
	LogDir        string        // logs directory
	LogConsole    bool          // echo log events to stderr for foreground runs
	Interval      time.Duration // nominal gap between cycle starts
	CheckTimeout  time.Duration // per-probe round-trip deadline
	LatencyBudget time.Duration // max elapsed time still counted as UP
	Concurrency   int           // max probes in flight per cycle
	SlackWebhook  string        // empty disables alerts
	AlertCooldown time.Duration // min gap between repeated DOWN alerts
	AlertRecovery bool          // also alert when an endpoint recovers
}

func FromEnv() Settings {
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	return Settings{
		APIAddr:       os.Getenv("API_ADDR"),
		LogDir:        logDir,
		LogConsole:    envBool("LOG_CONSOLE", false),
		Interval:      envDurationMS("CYCLE_INTERVAL_MS", 15*time.Second),
		CheckTimeout:  envDurationMS("CHECK_TIMEOUT_MS", 500*time.Millisecond),
		LatencyBudget: envDurationMS("LATENCY_BUDGET_MS", 500*time.Millisecond),
		Concurrency:   envInt("MAX_CONCURRENT_CHECKS", 8),
		SlackWebhook:  os.Getenv("SLACK_WEBHOOK"),
		AlertCooldown: envDurationMS("ALERT_COOLDOWN_MS", 5*time.Minute),
		AlertRecovery: envBool("ALERT_ON_RECOVERY", true),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDurationMS(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}
