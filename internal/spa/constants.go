package spa

// IndexFile is the application shell served for unknown paths
const IndexFile = "index.html"

// Response bodies for failures
const (
	BodyIndexNotFound = "index not found"
	BodyErrorPrefix   = "error: "
	ContentTypeHTML   = "text/html; charset=utf-8"
	AllowedMethods    = "GET, HEAD"
)

// Log messages
const (
	LogMsgIndexUnreadable = "Unable to read index.html"
	LogMsgServeFailed     = "Unable to serve static files"
	LogMsgFallback        = "Serving index.html fallback"
)
