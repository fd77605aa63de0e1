package metrics

// Metric names
const (
	MetricNameResolutionsTotal      = "econcdn_resolutions_total"
	MetricNameResolutionDuration    = "econcdn_resolution_duration_seconds"
	MetricNameCatalogRefreshesTotal = "econcdn_catalog_refreshes_total"
	MetricNameCatalogVersion        = "econcdn_catalog_version"
	MetricNameAssetCacheTotal       = "econcdn_asset_cache_total"
	MetricNameHTTPRequestsTotal     = "econcdn_http_requests_total"
	MetricNameHTTPRequestDuration   = "econcdn_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight  = "econcdn_http_requests_in_flight"
)

// Help texts
const (
	HelpTextResolutionsTotal      = "Item image resolutions by item kind and outcome"
	HelpTextResolutionDuration    = "Time spent resolving an item image URL"
	HelpTextCatalogRefreshesTotal = "Catalog refresh attempts by outcome"
	HelpTextCatalogVersion        = "Version of the currently published catalog snapshot"
	HelpTextAssetCacheTotal       = "Asset byte cache lookups by result"
	HelpTextHTTPRequestsTotal     = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration   = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight  = "Number of HTTP requests currently being served"
)

// Labels
const (
	LabelKind    = "kind"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
)

// Outcome label values
const (
	OutcomeResolved  = "resolved"
	OutcomeMiss      = "miss"
	OutcomeDisabled  = "disabled"
	OutcomePublished = "published"
	OutcomeUnchanged = "unchanged"
	OutcomeError     = "error"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Histogram buckets
var (
	ResolutionLatencyBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}
	HTTPLatencyBuckets       = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
)
