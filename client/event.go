package client

import (
	"github.com/openvoyage/sdk-go/logger"
)

// CallEvent summarizes one dispatched API call for observability. It is
// emitted to the configured [CallSink] after response resolution, on both
// the success and the API-error path.
type CallEvent struct {
	// Method is the HTTP verb, upper-cased.
	Method string

	// URL the request was sent to.
	URL string

	// Headers are the transmitted request headers with sensitive values
	// masked.
	Headers map[string]string

	// Body is the serialized request body, empty for bodyless requests.
	Body string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// DecodeFailures counts the candidate shapes that were attempted and
	// failed on the success path. A positive count with an empty call result
	// distinguishes "nothing matched" from "no body was expected".
	DecodeFailures int
}

const maskedHeaderValue = "<masked>"

// sensitiveHeaders lists header keys whose values never appear in call
// events.
var sensitiveHeaders = map[string]struct{}{
	headerAuthorization: {},
}

// maskHeaders returns a copy of headers with sensitive values replaced.
func maskHeaders(headers map[string]string) map[string]string {
	masked := make(map[string]string, len(headers))
	for key, value := range headers {
		if _, sensitive := sensitiveHeaders[key]; sensitive {
			masked[key] = maskedHeaderValue
			continue
		}
		masked[key] = value
	}

	return masked
}

// LogSink is the default [CallSink]: it writes every call event through the
// SDK logger as a single structured entry.
type LogSink struct {
	logger *logger.Logger
}

// NewLogSink constructs a [LogSink] writing through log.
func NewLogSink(log *logger.Logger) *LogSink {
	return &LogSink{logger: log}
}

// CallCompleted implements [CallSink].
func (s *LogSink) CallCompleted(event CallEvent) {
	s.logger.Info().
		Str("method", event.Method).
		Str("url", event.URL).
		Interface("headers", event.Headers).
		Str("body", event.Body).
		Int("status", event.StatusCode).
		Int("decode_failures", event.DecodeFailures).
		Msg("api call")
}
