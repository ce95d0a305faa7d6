package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the Prometheus collectors of the scheduler and its HTTP API. A nil Recorder records nothing
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	runs            *prometheus.CounterVec
	placed          *prometheus.CounterVec
	unplaced        *prometheus.CounterVec
	runDuration     *prometheus.HistogramVec
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_runs_total",
		Help: "Total number of scheduling runs",
	}, []string{"strategy", "verified"})

	placed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_teams_placed_total",
		Help: "Total number of teams given an interview slot",
	}, []string{"strategy"})

	unplaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_teams_unplaced_total",
		Help: "Total number of teams left without a slot, by failure reason",
	}, []string{"strategy", "reason"})

	runDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduling_run_duration_seconds",
		Help:    "Duration of scheduling runs in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	registry.MustRegister(runs, placed, unplaced, runDuration, requestDuration, requestTotal)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		runs:            runs,
		placed:          placed,
		unplaced:        unplaced,
		runDuration:     runDuration,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}
}

// Handler exposes the Prometheus HTTP handler
func (recorder *Recorder) Handler() http.Handler {
	if recorder == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return recorder.handler
}

// ObserveRun records a finished run. unplaced counts the unscheduled teams by failure reason
func (recorder *Recorder) ObserveRun(strategy string, verified bool, placed int, unplaced map[string]int, elapsed time.Duration) {
	if recorder == nil {
		return
	}
	recorder.runs.WithLabelValues(strategy, strconv.FormatBool(verified)).Inc()
	recorder.placed.WithLabelValues(strategy).Add(float64(placed))
	for reason, count := range unplaced {
		recorder.unplaced.WithLabelValues(strategy, reason).Add(float64(count))
	}
	recorder.runDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

func (recorder *Recorder) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if recorder == nil {
		return
	}
	statusLabel := strconv.Itoa(status)
	recorder.requestDuration.WithLabelValues(method, route, statusLabel).Observe(elapsed.Seconds())
	recorder.requestTotal.WithLabelValues(method, route, statusLabel).Inc()
}

// WriteTextfile dumps every metric in the text exposition format, for node_exporter's textfile collector
func (recorder *Recorder) WriteTextfile(path string) error {
	if recorder == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, recorder.registry)
}

// Gatherer exposes the registry, mostly for tests
func (recorder *Recorder) Gatherer() prometheus.Gatherer {
	return recorder.registry
}
