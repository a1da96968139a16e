package server

import "time"

// Route paths
const (
	RouteAPI     = "/api"
	RouteHello   = "/hello"
	RouteCards   = "/cards"
	RouteCard    = "/card/{id}"
	RouteHealthz = "/healthz"
	RouteReadyz  = "/readyz"
	RouteVersion = "/version"
	RouteMetrics = "/metrics"
	RouteSwagger = "/swagger/*"
)

// Paths skipped by the request logger
var QuietPaths = []string{
	RouteHealthz,
	RouteReadyz,
	RouteMetrics,
	"/swagger/",
}

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgCORSEnabled      = "CORS enabled"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	CORSMaxAge        = 300
)
