package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	QuotesRead = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuotesRead,
			Help: HelpTextQuotesRead,
		},
		[]string{LabelSource},
	)

	BoonsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoonsDropped,
			Help: HelpTextBoonsDropped,
		},
		[]string{LabelRarity},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	BadgesUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgesUnlocked,
			Help: HelpTextBadgesUnlocked,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	ArtGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameArtGenerated,
			Help: HelpTextArtGenerated,
		},
		[]string{LabelKind},
	)
)
