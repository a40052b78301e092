package domain

import "net/http"

// Endpoint is the immutable configuration for one monitored endpoint.
// It is loaded once at startup and never mutated afterwards, so it is
// safe to share across concurrent probes without synchronization.
type Endpoint struct {
	Name    string            `yaml:"name" json:"name"`
	URL     string            `yaml:"url" json:"url"`
	Method  string            `yaml:"method,omitempty" json:"method"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty" json:"-"`
}

// RequestMethod returns the HTTP method to probe with, defaulting to GET.
func (e Endpoint) RequestMethod() string {
	if e.Method == "" {
		return http.MethodGet
	}
	return e.Method
}
