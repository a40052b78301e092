// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hamed0406/endpointmon/internal/config"
	"github.com/hamed0406/endpointmon/internal/domain"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if len(os.Args) != 2 {
		fail("usage: preflight <endpoints.yaml>")
	}
	path := os.Args[1]

	eps, err := config.LoadEndpoints(path)
	if err != nil {
		fail("endpoint file rejected: " + err.Error())
	}
	ok(fmt.Sprintf("endpoint file valid (%d endpoints)", len(eps)))

	domains := map[string]bool{}
	for _, e := range eps {
		domains[domain.ExtractDomain(e.URL)] = true
	}
	ok(fmt.Sprintf("%d distinct domains", len(domains)))

	for _, e := range eps {
		if e.Body == "" {
			continue
		}
		// bodies are only checked at probe time; flag the obvious ones now
		if !strings.HasPrefix(strings.TrimSpace(e.Body), "{") && !strings.HasPrefix(strings.TrimSpace(e.Body), "[") {
			warn(fmt.Sprintf("endpoint %q body does not look like JSON; it will probe DOWN", e.Name))
		}
	}

	if strings.TrimSpace(os.Getenv("SLACK_WEBHOOK")) == "" {
		warn("SLACK_WEBHOOK empty — transition alerts disabled.")
	} else {
		ok("SLACK_WEBHOOK present")
	}

	if addr := strings.TrimSpace(os.Getenv("API_ADDR")); addr == "" {
		warn("API_ADDR empty — stats API disabled.")
	} else {
		ok("API_ADDR=" + addr)
	}

	ok("preflight passed")
}
