package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/hamed0406/endpointmon/internal/domain"
)

// HasYAMLExt reports whether path looks like a YAML file. The endpoint
// file contract only accepts .yaml/.yml.
func HasYAMLExt(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// LoadEndpoints reads and validates the endpoint list. Any problem here
// is a fatal startup error: the monitor must never start probing with a
// partial or invalid descriptor list. Endpoint bodies are deliberately
// not JSON-checked here; a malformed body is a per-cycle DOWN, not a
// configuration fault.
func LoadEndpoints(path string) ([]domain.Endpoint, error) {
	if !HasYAMLExt(path) {
		return nil, fmt.Errorf("endpoint file must be a YAML file (.yaml or .yml): %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoint file: %w", err)
	}

	var eps []domain.Endpoint
	if err := yaml.Unmarshal(raw, &eps); err != nil {
		return nil, fmt.Errorf("parse endpoint file: %w", err)
	}
	if len(eps) == 0 {
		return nil, fmt.Errorf("endpoint file %s contains no endpoints", path)
	}

	var verr error
	for i := range eps {
		if err := validateEndpoint(i, eps[i]); err != nil {
			verr = multierr.Append(verr, err)
			continue
		}
		if eps[i].Method == "" {
			eps[i].Method = "GET"
		}
		if eps[i].Headers == nil {
			eps[i].Headers = map[string]string{}
		}
	}
	if verr != nil {
		return nil, verr
	}
	return eps, nil
}

func validateEndpoint(i int, e domain.Endpoint) error {
	if e.Name == "" {
		return fmt.Errorf("endpoint %d: missing name", i)
	}
	u, err := url.Parse(e.URL)
	if err != nil {
		return fmt.Errorf("endpoint %q: invalid url: %w", e.Name, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %q: url must be absolute http(s): %q", e.Name, e.URL)
	}
	return nil
}
