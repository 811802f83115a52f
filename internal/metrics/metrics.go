package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Calendar sync metrics
	SyncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publiflow_calendar_sync_runs_total",
			Help: "Calendar sync runs by outcome",
		},
		[]string{"outcome"},
	)

	SyncEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publiflow_calendar_sync_events_total",
			Help: "Calendar events submitted by result",
		},
		[]string{"result"},
	)

	TokenRefreshesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publiflow_calendar_token_refreshes_total",
			Help: "OAuth refresh token exchanges by result",
		},
		[]string{"result"},
	)

	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "publiflow_calendar_sync_duration_seconds",
			Help:    "Wall time of a calendar sync run",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Board metrics
	BoardMovesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publiflow_board_moves_total",
			Help: "Idea board moves by result",
		},
		[]string{"result"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publiflow_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "publiflow_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

func init() {
	prometheus.MustRegister(SyncRunsTotal)
	prometheus.MustRegister(SyncEventsTotal)
	prometheus.MustRegister(TokenRefreshesTotal)
	prometheus.MustRegister(SyncDuration)
	prometheus.MustRegister(BoardMovesTotal)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
}

// Handler returns the Prometheus scrape handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer measures the duration of an operation
type Timer struct {
	start time.Time
}

// NewTimer starts a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Duration returns the elapsed time since the timer started
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveDuration records the elapsed seconds in the given histogram
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Duration().Seconds())
}
