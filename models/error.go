// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package models

// Error is the generic error body returned by API endpoints. Every service
// error response is expected to decode into this shape unless the caller
// registered a more specific one for the status code.
type Error struct {
	// Type is a machine-readable error category, usually a URI or a short
	// code such as "invalid_request".
	Type string `json:"type,omitempty"`

	// Message is the human-readable description of what went wrong.
	Message string `json:"message,omitempty"`

	// Errors lists field-level details for validation failures. Empty for
	// errors that are not tied to a specific input field.
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail describes a single field-level problem inside an [Error].
type ErrorDetail struct {
	// Field is the JSON path of the offending request field.
	Field string `json:"field,omitempty"`

	// Message is the human-readable description for this field.
	Message string `json:"message,omitempty"`
}
