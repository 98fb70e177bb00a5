package isa

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/sells-group/quote-wizard/internal/resilience"
)

// Error codes produced on the client side. Any other code is supplied by the
// backend.
const (
	CodeNetworkError = "NETWORK_ERROR"
	CodeUnknownError = "UNKNOWN_ERROR"
)

// APIError is the normalised failure of a backend call.
type APIError struct {
	Code    string
	Message string
	// StatusCode is 0 when no response reached the client.
	StatusCode int
	// Details holds the raw error body, if any.
	Details json.RawMessage
	// FromServer is set when Message was supplied by the backend rather than
	// derived on the client side.
	FromServer bool

	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("isa: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("isa: %s (status %d): %s", e.Code, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNetwork reports whether no response was received.
func (e *APIError) IsNetwork() bool {
	return e.Code == CodeNetworkError
}

// ServerMessage returns the backend's own message, or "" when the message was
// produced by the client.
func (e *APIError) ServerMessage() string {
	if !e.FromServer {
		return ""
	}
	return e.Message
}

// Retryable reports whether repeating the request may succeed.
func (e *APIError) Retryable() bool {
	return resilience.IsTransient(e.cause)
}

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the error shape returned by the backend.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func networkError(err error) *APIError {
	msg := "Network error occurred"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	if err == nil {
		err = errors.New(msg)
	}
	return &APIError{Code: CodeNetworkError, Message: msg, cause: resilience.NewTransientError(err, 0)}
}

func responseError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Code:       CodeUnknownError,
		Message:    fmt.Sprintf("Request failed with status code %d", statusCode),
		StatusCode: statusCode,
	}
	if resilience.IsTransientHTTPStatus(statusCode) {
		apiErr.cause = resilience.NewTransientError(errors.New(http.StatusText(statusCode)), statusCode)
	}
	if len(body) == 0 {
		return apiErr
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}
	apiErr.Details = json.RawMessage(body)
	if eb.Code != "" {
		apiErr.Code = eb.Code
	}
	if eb.Message != "" {
		apiErr.Message = eb.Message
		apiErr.FromServer = true
	}
	return apiErr
}

// isRetryable classifies a failed GET. Errors outside the API taxonomy fall
// back to the generic transient check.
func isRetryable(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Retryable()
	}
	return resilience.IsTransient(err)
}

// statusOK reports a 2xx status.
func statusOK(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
