package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestObserveStep(t *testing.T) {
	m := New("memory")

	m.GameStarted()
	m.ObserveStep(core.StepResult{Matched: 1})
	m.ObserveStep(core.StepResult{Mismatched: 1})
	m.ObserveStep(core.StepResult{Mismatched: 1})
	m.ObserveStep(core.StepResult{Matched: 1, Finished: true, State: core.GameState{Score: 42}})

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"games started", testutil.ToFloat64(m.GamesStarted), 1},
		{"pairs matched", testutil.ToFloat64(m.PairsMatched), 2},
		{"mismatches", testutil.ToFloat64(m.Mismatches), 2},
		{"games completed", testutil.ToFloat64(m.GamesCompleted), 1},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, expected %v", tc.name, tc.got, tc.want)
		}
	}

	if n := testutil.CollectAndCount(m.CompletionSeconds); n != 1 {
		t.Errorf("completion histogram should collect one metric, got %d", n)
	}
}

func TestSessions(t *testing.T) {
	m := New("memory")

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	if got := testutil.ToFloat64(m.ActiveSessions); got != 1 {
		t.Errorf("active sessions = %v, expected 1", got)
	}
	if got := testutil.ToFloat64(m.SessionsTotal); got != 2 {
		t.Errorf("sessions total = %v, expected 2", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics

	// None of these should panic.
	m.SessionStarted()
	m.SessionEnded()
	m.GameStarted()
	m.ObserveStep(core.StepResult{Matched: 1, Finished: true})

	if m.Registry() != nil {
		t.Error("nil metrics should have no registry")
	}
}

func TestRouter(t *testing.T) {
	m := New("memory")
	m.ObserveStep(core.StepResult{Matched: 3})

	srv := httptest.NewServer(NewRouter(m))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /metrics status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "memory_pairs_matched_total 3") {
		t.Errorf("metrics output missing pairs counter:\n%s", body)
	}

	resp, err = http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /healthz status = %d", resp.StatusCode)
	}
}
