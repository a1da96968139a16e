package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Card and static metric names
const (
	MetricNameCardsServed       = "cards_served_total"
	MetricNameSPAFallbacks      = "spa_fallbacks_total"
	MetricNameStaticFilesServed = "static_files_served_total"
	MetricNameStaticErrors      = "static_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Card and static metric help text
const (
	HelpTextCardsServed       = "Total number of cards returned by the API"
	HelpTextSPAFallbacks      = "Total number of requests answered with the index.html fallback"
	HelpTextStaticFilesServed = "Total number of static files served"
	HelpTextStaticErrors      = "Total number of static requests that failed with a server error"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelReason   = "reason"
)

// Label values
const (
	EndpointCards = "cards"
	EndpointCard  = "card"

	ReasonIndexUnreadable = "index_unreadable"
	ReasonLookupFailed    = "lookup_failed"

	// PathUnmatched labels requests that no route pattern matched, keeping
	// the path label bounded.
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
