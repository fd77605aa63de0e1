package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution Metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelKind, LabelOutcome},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionLatencyBuckets,
		},
		[]string{LabelKind},
	)
)

// Catalog Metrics
var (
	CatalogRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRefreshesTotal,
			Help: HelpTextCatalogRefreshesTotal,
		},
		[]string{LabelOutcome},
	)

	CatalogVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogVersion,
			Help: HelpTextCatalogVersion,
		},
	)

	AssetCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAssetCacheTotal,
			Help: HelpTextAssetCacheTotal,
		},
		[]string{LabelResult},
	)
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
