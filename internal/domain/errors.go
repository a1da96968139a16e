package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgInvalidCardID = "invalid card id"
	ErrMsgMalformedCard = "malformed card"
	ErrMsgMalformedHand = "malformed hand"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidCardID = errors.New(ErrMsgInvalidCardID)
	ErrMalformedCard = errors.New(ErrMsgMalformedCard)
	ErrMalformedHand = errors.New(ErrMsgMalformedHand)
)
