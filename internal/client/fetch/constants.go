package fetch

import "strconv"

// API paths on the card server
const (
	HelloPath = "/api/hello"
	CardsPath = "/api/cards"
	cardPath  = "/api/card/"
)

// CardPath is the path of a single card
func CardPath(id int) string {
	return cardPath + strconv.Itoa(id)
}

// Error message formats, shown to the user verbatim
const (
	msgStatusFormat    = "Error fetching data: %d (%s)"
	msgTransportFormat = "Error fetching data: %v"
	msgDecodeFormat    = "Error: %v"
	msgTrailingData    = "unexpected data after JSON value"
	msgNullBody        = "response body is null"
)

var jsonNull = []byte("null")

// Log messages
const (
	LogMsgRequestFailed = "Fetch failed"
	LogMsgRequestDone   = "Fetch completed"
)
