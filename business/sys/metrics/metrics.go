// Package metrics constructs the metrics the application will track.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ledger"

// Source represents the node information exposed as metrics.
type Source interface {
	QueryStats() state.Stats
	QueryMempoolLength() int
	QueryLatestBlock() database.SealedBlock
}

// Metrics holds the collectors for the node.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   prometheus.Counter
	panics   prometheus.Counter
}

// New constructs the metrics and registers them with a private registry. The
// chain and mempool values are read from the source when scraped.
func New(src Source) *Metrics {
	reg := prometheus.NewRegistry()

	m := Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"method"}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Total number of API requests that returned an error.",
		}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "panics_total",
			Help:      "Total number of API requests that panicked.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		m.errors,
		m.panics,

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "height",
			Help:      "Number of the last sealed block.",
		}, func() float64 { return float64(src.QueryLatestBlock().Number) }),

		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "mempool",
			Name:      "transactions",
			Help:      "Number of transactions waiting in the mempool.",
		}, func() float64 { return float64(src.QueryMempoolLength()) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "blocks_sealed_total",
			Help:      "Total number of blocks sealed by the miner.",
		}, func() float64 { return float64(src.QueryStats().BlocksSealed) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tx",
			Name:      "submitted_total",
			Help:      "Total number of transactions accepted into the mempool.",
		}, func() float64 { return float64(src.QueryStats().TxSubmitted) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tx",
			Name:      "applied_total",
			Help:      "Total number of transactions applied to accounts.",
		}, func() float64 { return float64(src.QueryStats().TxApplied) }),

		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tx",
			Name:      "rejected_total",
			Help:      "Total number of transactions dropped at execution.",
		}, func() float64 { return float64(src.QueryStats().TxRejected) }),
	)

	return &m
}

// Handler returns the handler that serves the metrics for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// AddRequest records a completed request.
func (m *Metrics) AddRequest(method string, statusCode int, took time.Duration) {
	m.requests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	m.duration.WithLabelValues(method).Observe(took.Seconds())
}

// AddError records a request that returned an error.
func (m *Metrics) AddError() {
	m.errors.Inc()
}

// AddPanic records a request that panicked.
func (m *Metrics) AddPanic() {
	m.panics.Inc()
}
