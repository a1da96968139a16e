package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Card Metrics
var (
	CardsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCardsServed,
			Help: HelpTextCardsServed,
		},
		[]string{LabelEndpoint},
	)
)

// Static Metrics
var (
	SPAFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSPAFallbacks,
			Help: HelpTextSPAFallbacks,
		},
	)

	StaticFilesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStaticFilesServed,
			Help: HelpTextStaticFilesServed,
		},
	)

	StaticErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStaticErrors,
			Help: HelpTextStaticErrors,
		},
		[]string{LabelReason},
	)
)
