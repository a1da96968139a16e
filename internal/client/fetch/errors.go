package fetch

import (
	"errors"
	"fmt"
)

var (
	errTrailingData = errors.New(msgTrailingData)
	errNullBody     = errors.New(msgNullBody)
)

// StatusError reports a response outside the 2xx range
type StatusError struct {
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(msgStatusFormat, e.Status, e.StatusText)
}

// DecodeError reports a body that could not be read or parsed
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf(msgDecodeFormat, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports a request that never produced a response
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf(msgTransportFormat, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
