package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadEndpoints_OK(t *testing.T) {
	p := writeFile(t, "endpoints.yaml", `
- name: fetch index
  url: https://example.com/
- name: submit payload
  url: https://example.com/body
  method: POST
  headers:
    content-type: application/json
  body: '{"foo":"bar"}'
`)
	eps, err := LoadEndpoints(p)
	if err != nil {
		t.Fatalf("LoadEndpoints: %v", err)
	}
	if len(eps) != 2 {
		t.Fatalf("want 2 endpoints, got %d", len(eps))
	}
	if eps[0].Method != "GET" {
		t.Fatalf("want method defaulted to GET, got %q", eps[0].Method)
	}
	if eps[0].Headers == nil {
		t.Fatalf("want headers defaulted to empty map")
	}
	if eps[1].Method != "POST" || eps[1].Body == "" {
		t.Fatalf("second endpoint not loaded: %+v", eps[1])
	}
}

func TestLoadEndpoints_RejectsNonYAMLExtension(t *testing.T) {
	p := writeFile(t, "endpoints.json", `[]`)
	if _, err := LoadEndpoints(p); err == nil {
		t.Fatal("want error for non-YAML extension")
	}
}

func TestLoadEndpoints_RejectsEmptyList(t *testing.T) {
	p := writeFile(t, "empty.yml", "")
	if _, err := LoadEndpoints(p); err == nil {
		t.Fatal("want error for empty endpoint list")
	}
}

func TestLoadEndpoints_RejectsMissingFields(t *testing.T) {
	p := writeFile(t, "bad.yaml", `
- url: https://example.com/
- name: no scheme
  url: example.com/path
`)
	_, err := LoadEndpoints(p)
	if err == nil {
		t.Fatal("want validation error")
	}
	// both problems should be reported, not just the first
	if !strings.Contains(err.Error(), "missing name") || !strings.Contains(err.Error(), "http(s)") {
		t.Fatalf("want aggregated errors, got: %v", err)
	}
}

func TestLoadEndpoints_MissingFile(t *testing.T) {
	if _, err := LoadEndpoints(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestLoadEndpoints_MalformedBodyIsNotAConfigError(t *testing.T) {
	p := writeFile(t, "body.yaml", `
- name: broken body
  url: https://example.com/
  body: '{'
`)
	eps, err := LoadEndpoints(p)
	if err != nil {
		t.Fatalf("malformed body must load fine (probe handles it): %v", err)
	}
	if eps[0].Body != "{" {
		t.Fatalf("body not preserved: %q", eps[0].Body)
	}
}
