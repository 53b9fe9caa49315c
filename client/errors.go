package client

import (
	"fmt"

	"github.com/openvoyage/sdk-go/models"
)

// APIError is the generic typed error raised for a non-2xx response whose
// status code has no entry in the caller's [ErrorShapes] table. Endpoint
// packages embed it in their own error types so callers can match either the
// specific type or *APIError via errors.As.
type APIError struct {
	// ErrorCode is the HTTP status code of the response.
	ErrorCode int

	// Err is the parsed error body, a *[models.Error] unless a registered
	// error shape produced something more specific.
	Err any
}

// NewAPIError constructs an [*APIError] from a parsed error body and the
// response status code.
func NewAPIError(errBody any, statusCode int) *APIError {
	return &APIError{ErrorCode: statusCode, Err: errBody}
}

func (e *APIError) Error() string {
	if apiErr, ok := e.Err.(*models.Error); ok && apiErr.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.ErrorCode, apiErr.Message)
	}
	return fmt.Sprintf("api error %d: %+v", e.ErrorCode, e.Err)
}

// ErrorMapping pairs the error body shape to decode with the constructor of
// the error to raise for one status code.
type ErrorMapping struct {
	// Shape decodes the error response body. Unlike success candidates,
	// error shapes are decoded leniently: members of the body unknown to
	// the shape are ignored rather than defeating the mapping.
	Shape ResponseShape

	// New wraps the decoded error body and the status code into the typed
	// error returned to the caller.
	New func(errBody any, statusCode int) error
}

// ErrorShapes maps an HTTP status code to its [ErrorMapping]. Status codes
// absent from the table fall back to the generic [*APIError].
type ErrorShapes map[int]ErrorMapping
