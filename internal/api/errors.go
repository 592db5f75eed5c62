package api

import (
	"errors"
	"fmt"
)

// ErrNoServerSelected is returned by Connect when called with an empty id.
var ErrNoServerSelected = errors.New("no server selected")

// TransportError means the request did not produce an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response. Message is taken from the body's
// "message" or "error" field when one could be decoded.
type StatusError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Op, e.StatusCode)
}

// DecodeError means a 2xx body did not decode into the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ActionError is a 2xx action response that reported success=false.
type ActionError struct {
	Op     string
	Result ActionResult
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, UserMessage(e))
}

// UserMessage extracts the short text shown to the user for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		if actionErr.Result.Error != "" {
			return actionErr.Result.Error
		}
		if actionErr.Result.Message != "" {
			return actionErr.Result.Message
		}
		return "unknown error"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Message != "" {
			return statusErr.Message
		}
		return fmt.Sprintf("HTTP %d", statusErr.StatusCode)
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return "network error: " + transportErr.Err.Error()
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return "malformed response"
	}
	return err.Error()
}
