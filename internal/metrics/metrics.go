// Package metrics exposes Prometheus collectors for bevel sessions.
//
// A nil *Recorder is valid and records nothing, so games can hold one
// unconditionally.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bevel"

// Recorder owns a private registry and the game collectors.
type Recorder struct {
	registry *prometheus.Registry

	gamesStarted prometheus.Counter
	gamesFailed  prometheus.Counter
	clears       *prometheus.CounterVec
	clearPoints  *prometheus.CounterVec
	clearSize    *prometheus.HistogramVec
	finalScore   prometheus.Histogram
	sessions     prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started or restarted.",
		}),
		gamesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_failed_total",
			Help:      "Games that ended because the stack reached the top.",
		}),
		clears: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clears_total",
			Help:      "Squares cleared, by square kind and clear type.",
		}, []string{"kind", "type"}),
		clearPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clear_points_total",
			Help:      "Points awarded by clears, by square kind.",
		}, []string{"kind"}),
		clearSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "clear_size",
			Help:      "Size of cleared squares.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		}, []string{"kind"}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at the end of each game.",
			Buckets:   prometheus.ExponentialBuckets(10, 5, 8),
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ssh_sessions",
			Help:      "Open SSH sessions.",
		}),
	}

	r.registry.MustRegister(
		r.gamesStarted, r.gamesFailed,
		r.clears, r.clearPoints, r.clearSize,
		r.finalScore, r.sessions,
	)
	return r
}

// Registry returns the registry the collectors live in.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// GameStarted counts a new or restarted game.
func (r *Recorder) GameStarted() {
	if r == nil {
		return
	}
	r.gamesStarted.Inc()
}

// GameFailed counts a lost game and observes its final score.
func (r *Recorder) GameFailed(score int) {
	if r == nil {
		return
	}
	r.gamesFailed.Inc()
	r.finalScore.Observe(float64(score))
}

// Cleared records one clear of a square of the given kind ("normal" or
// "bevelled"), clear type ("perfect" or "cover") and size.
func (r *Recorder) Cleared(kind, clearType string, size, points int) {
	if r == nil {
		return
	}
	r.clears.WithLabelValues(kind, clearType).Inc()
	r.clearPoints.WithLabelValues(kind).Add(float64(points))
	r.clearSize.WithLabelValues(kind).Observe(float64(size))
}

// SessionOpened tracks an SSH session; call the returned func when it closes.
func (r *Recorder) SessionOpened() func() {
	if r == nil {
		return func() {}
	}
	r.sessions.Inc()
	return r.sessions.Dec
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// StartHTTP serves /metrics on addr in a background goroutine.
// Cancelling ctx shuts the server down.
func (r *Recorder) StartHTTP(ctx context.Context, addr string, logger *log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Serving metrics", "addr", addr, "path", "/metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics shutdown", "error", err)
		}
	}()

	return srv
}
