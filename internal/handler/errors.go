package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidCardID = "Invalid card ID"
	ErrMsgNotReady      = "static root is not ready"
)

// Log messages
const (
	LogMsgInvalidCardID   = "Rejected malformed card id"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
)
