package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounters(t *testing.T) {
	r := New()

	r.GameStarted()
	r.GameStarted()
	r.GameFailed(120)
	r.Cleared("normal", "perfect", 2, 20)
	r.Cleared("normal", "perfect", 3, 45)
	r.Cleared("bevelled", "cover", 1, 4)

	if got := testutil.ToFloat64(r.gamesStarted); got != 2 {
		t.Errorf("games started = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.gamesFailed); got != 1 {
		t.Errorf("games failed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.clears.WithLabelValues("normal", "perfect")); got != 2 {
		t.Errorf("normal perfect clears = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.clears.WithLabelValues("bevelled", "cover")); got != 1 {
		t.Errorf("bevelled cover clears = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.clearPoints.WithLabelValues("normal")); got != 65 {
		t.Errorf("normal points = %v, want 65", got)
	}
	if got := testutil.CollectAndCount(r.finalScore); got != 1 {
		t.Errorf("final score series = %d, want 1", got)
	}
}

func TestRecorderSessions(t *testing.T) {
	r := New()

	closeA := r.SessionOpened()
	closeB := r.SessionOpened()
	if got := testutil.ToFloat64(r.sessions); got != 2 {
		t.Fatalf("sessions = %v, want 2", got)
	}
	closeA()
	closeB()
	if got := testutil.ToFloat64(r.sessions); got != 0 {
		t.Errorf("sessions = %v, want 0", got)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	r.GameStarted()
	r.GameFailed(1)
	r.Cleared("normal", "cover", 2, 8)
	r.SessionOpened()()
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := New()
	r.GameStarted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bevel_games_started_total 1") {
		t.Errorf("body missing counter:\n%s", rec.Body.String())
	}
}
