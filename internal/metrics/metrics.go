// Package metrics exposes Prometheus collectors for the backend.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scribe"

// Metrics groups every collector the server reports.
type Metrics struct {
	rpcDuration   *prometheus.HistogramVec
	signIns       *prometheus.CounterVec
	transcribed   *prometheus.CounterVec
	asrDuration   *prometheus.HistogramVec
	historyWrites prometheus.Counter
	watchers      prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Connect RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sign_ins_total",
			Help:      "Sign-in attempts by outcome.",
		}, []string{"outcome"}),
		transcribed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcription requests by engine and outcome.",
		}, []string{"engine", "outcome"}),
		asrDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Time spent in the transcription engine.",
			Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"engine"}),
		historyWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_writes_total",
			Help:      "Transcripts appended to user histories.",
		}),
		watchers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_watchers",
			Help:      "Open WatchTranscriptions streams.",
		}),
	}
	reg.MustRegister(m.rpcDuration, m.signIns, m.transcribed, m.asrDuration, m.historyWrites, m.watchers)
	return m
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// SignIn counts one sign-in attempt. outcome is "ok" or an auth code.
func (m *Metrics) SignIn(outcome string) {
	if m == nil {
		return
	}
	m.signIns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Transcription(engine, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.transcribed.WithLabelValues(engine, outcome).Inc()
	if outcome == "ok" {
		m.asrDuration.WithLabelValues(engine).Observe(d.Seconds())
	}
}

func (m *Metrics) HistoryWrite() {
	if m == nil {
		return
	}
	m.historyWrites.Inc()
}

// WatcherOpened increments the open-watcher gauge and returns the matching
// decrement.
func (m *Metrics) WatcherOpened() func() {
	if m == nil {
		return func() {}
	}
	m.watchers.Inc()
	return m.watchers.Dec
}
