package reinfolib

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

const unknownAPIError = "Unknown API error"

// APIError is returned by every Client operation when the upstream call fails.
// StatusCode is zero when no HTTP response was received.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("%s failed (%d): %s", e.Operation, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// newStatusError builds an APIError from a non-2xx response, preferring the
// upstream "message" field over the HTTP status text.
func newStatusError(operation string, status int, body []byte) *APIError {
	message := ""
	if gjson.ValidBytes(body) {
		message = stringValue(gjson.GetBytes(body, "message"))
	}
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = unknownAPIError
	}
	return &APIError{Operation: operation, StatusCode: status, Message: message}
}

func newTransportError(operation string, err error) *APIError {
	message := unknownAPIError
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &APIError{Operation: operation, Message: message, Err: err}
}
