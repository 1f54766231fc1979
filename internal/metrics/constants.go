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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameQuotesRead     = "quotes_read_total"
	MetricNameBoonsDropped   = "boons_dropped_total"
	MetricNameLevelUps       = "level_ups_total"
	MetricNameBadgesUnlocked = "badges_unlocked_total"
	MetricNameXPAwarded      = "xp_awarded_total"
	MetricNameArtGenerated   = "art_generated_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextQuotesRead     = "Total number of quotes read"
	HelpTextBoonsDropped   = "Total number of boons dropped, by rarity"
	HelpTextLevelUps       = "Total number of level ups"
	HelpTextBadgesUnlocked = "Total number of badges unlocked"
	HelpTextXPAwarded      = "Total experience points awarded"
	HelpTextArtGenerated   = "Total number of art generations, by kind"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRarity = "rarity"
	LabelSource = "source"
	LabelKind   = "kind"
)

// Log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
