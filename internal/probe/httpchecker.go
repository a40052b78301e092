package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/endpointmon/internal/domain"
)

const DefaultTimeout = 500 * time.Millisecond

const (
	reasonTimeout     = "Timeout"
	reasonBadStatus   = "Status code out of range"
	reasonTooSlow     = "Response too slow"
	reasonInvalidBody = "Invalid JSON body"
)

// HTTPChecker probes endpoints over HTTP(S). Timeout is the round-trip
// deadline; LatencyBudget is the elapsed time above which a successful
// response is still classified DOWN. Both default to 500ms, but keeping
// them separate lets slow-but-complete responses be exercised on their
// own.
type HTTPChecker struct {
	Client        *http.Client
	Timeout       time.Duration
	LatencyBudget time.Duration
}

func NewHTTPChecker(timeout, budget time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if budget <= 0 {
		budget = timeout
	}
	return &HTTPChecker{
		Client:        &http.Client{Timeout: timeout},
		Timeout:       timeout,
		LatencyBudget: budget,
	}
}

// Check issues exactly one request (zero if the body fails to parse) and
// classifies the outcome. Status-code failures take precedence over slow
// responses when both apply.
func (h *HTTPChecker) Check(ctx context.Context, ep domain.Endpoint) domain.ProbeResult {
	res := domain.ProbeResult{
		Name:   ep.Name,
		Domain: domain.ExtractDomain(ep.URL),
		Status: domain.StatusDown,
	}

	var body io.Reader
	if ep.Body != "" {
		var decoded any
		if err := json.Unmarshal([]byte(ep.Body), &decoded); err != nil {
			res.Reason = fmt.Sprintf("%s for %s (%s): %v", reasonInvalidBody, ep.Name, ep.URL, err)
			return res
		}
		body = strings.NewReader(ep.Body)
	}

	cctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, ep.RequestMethod(), ep.URL, body)
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	for k, v := range ep.Headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			res.Reason = reasonTimeout
			res.Elapsed = h.Timeout.Seconds()
			return res
		}
		res.Reason = err.Error()
		return res
	}
	defer resp.Body.Close()

	// the deadline covers the whole round trip: a 200 whose body stalls
	// past it is a Timeout, not an UP with a tiny elapsed
	_, derr := io.Copy(io.Discard, resp.Body)
	elapsed := time.Since(start)
	if derr != nil {
		if isTimeout(derr) {
			res.Reason = reasonTimeout
			res.Elapsed = h.Timeout.Seconds()
			return res
		}
		res.Reason = derr.Error()
		return res
	}

	res.Elapsed = elapsed.Seconds()
	switch {
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		res.Reason = reasonBadStatus
	case elapsed > h.LatencyBudget:
		res.Reason = reasonTooSlow
	default:
		res.Status = domain.StatusUp
	}
	return res
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
