// Package telemetry exports Prometheus metrics for classification and bulk
// ingestion and hands out the tracer used around ingestion batches.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "linkguard"

// Metrics holds the Prometheus collectors.
type Metrics struct {
	Predictions        *prometheus.CounterVec
	PredictionFailures *prometheus.CounterVec
	PredictionDuration prometheus.Histogram

	Batches      *prometheus.CounterVec
	BatchSize    prometheus.Histogram
	LinksOutcome *prometheus.CounterVec
}

type Provider struct {
	Tracer   trace.Tracer
	Metrics  *Metrics
	gatherer prometheus.Gatherer
}

// NewProvider registers collectors on reg. Passing a fresh registry keeps
// tests independent of the process-wide default registry.
func NewProvider(reg *prometheus.Registry) *Provider {
	return &Provider{
		Tracer:   otel.Tracer(serviceName),
		Metrics:  initMetrics(promauto.With(reg)),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}

func initMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		Predictions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkguard_predictions_total",
			Help: "Fraud verdicts produced, by source (remote, fallback, cache)",
		}, []string{"source"}),
		PredictionFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkguard_prediction_failures_total",
			Help: "Remote classifier failures that triggered the fallback, by reason",
		}, []string{"reason"}),
		PredictionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkguard_prediction_duration_seconds",
			Help:    "Latency of remote classifier calls",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Batches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkguard_ingest_batches_total",
			Help: "Bulk ingestion batches, by outcome (ok, failed)",
		}, []string{"outcome"}),
		BatchSize: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "linkguard_ingest_batch_size",
			Help:    "Number of new links per ingestion batch",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		LinksOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "linkguard_ingest_links_total",
			Help: "Bulk ingestion links, by outcome (inserted, conflict, existing, invalid)",
		}, []string{"outcome"}),
	}
}

// ObservePrediction records one verdict. Remote calls also record latency.
func (p *Provider) ObservePrediction(source string, duration time.Duration) {
	p.Metrics.Predictions.WithLabelValues(source).Inc()
	if source == "remote" {
		p.Metrics.PredictionDuration.Observe(duration.Seconds())
	}
}

func (p *Provider) ObservePredictionFailure(reason string) {
	p.Metrics.PredictionFailures.WithLabelValues(reason).Inc()
}

// ObserveBatch records one ingestion batch of size links. A failed batch has
// inserted and conflicts of zero.
func (p *Provider) ObserveBatch(size, inserted, conflicts int, failed bool) {
	p.Metrics.BatchSize.Observe(float64(size))
	if failed {
		p.Metrics.Batches.WithLabelValues("failed").Inc()
		return
	}
	p.Metrics.Batches.WithLabelValues("ok").Inc()
	p.Metrics.LinksOutcome.WithLabelValues("inserted").Add(float64(inserted))
	p.Metrics.LinksOutcome.WithLabelValues("conflict").Add(float64(conflicts))
}

func (p *Provider) ObserveRejected(invalid, existing int) {
	p.Metrics.LinksOutcome.WithLabelValues("invalid").Add(float64(invalid))
	p.Metrics.LinksOutcome.WithLabelValues("existing").Add(float64(existing))
}
