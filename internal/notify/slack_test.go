package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlack_OK(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	if err := s.Send(context.Background(), "Endpoint DOWN", "details"); err != nil {
		t.Fatalf("send err: %v", err)
	}
	if !strings.HasPrefix(got, "*Endpoint DOWN*") {
		t.Fatalf("payload not as expected: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	if err := NewSlack(ts.URL).Send(context.Background(), "X", "Y"); err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestNewSlack_EmptyWebhookDisabled(t *testing.T) {
	if NewSlack("") != nil {
		t.Fatal("empty webhook should disable slack")
	}
}

type failingNotifier struct{ err error }

func (f *failingNotifier) Send(ctx context.Context, title, text string) error { return f.err }

func TestMulti_AggregatesFailures(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")
	m := Multi{&failingNotifier{err: e1}, nil, &failingNotifier{err: nil}, &failingNotifier{err: e2}}

	err := m.Send(context.Background(), "t", "x")
	if err == nil {
		t.Fatal("want aggregated error")
	}
	if !errors.Is(err, e1) || !errors.Is(err, e2) {
		t.Fatalf("want both failures reported, got: %v", err)
	}
}
