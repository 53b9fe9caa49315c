// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

// Package client implements the generic API client at the core of the SDK.
//
// The primary type is [Client], whose single public operation [Client.Call]
// builds a request, injects authentication, applies default headers,
// serializes the body, dispatches the HTTP call, and maps the response into
// a typed value. Success bodies are matched against an ordered list of
// [ResponseShape] candidates; non-2xx responses always surface as a typed
// error, either through the caller's [ErrorShapes] table or as a generic
// [*APIError].
//
// Authentication is delegated to the [AuthClient] collaborator, and one
// structured [CallEvent] per dispatched request is emitted to the configured
// [CallSink].
package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock

// AuthClient supplies per-call credential material. It owns the token
// refresh lifecycle; the API client only asks it to check validity and hand
// over the header value.
type AuthClient interface {
	// RefreshToken ensures the held credential is valid. Implementations
	// decide internally whether a renewal is actually needed, so this is
	// called before every API request.
	RefreshToken(ctx context.Context) error

	// AuthHeader returns the Authorization header value to attach to the
	// request (e.g. "Bearer <token>"), or an empty string if no credential
	// is available yet.
	AuthHeader() string
}

// CallSink receives one [CallEvent] per dispatched API call. It is an
// observability side channel: the client never alters its behavior based on
// the sink, and sinks must not block for long.
type CallSink interface {
	// CallCompleted is invoked after the response has been received and
	// resolved, on both the success and the API-error path. It is not
	// invoked when the transport itself fails.
	CallCompleted(event CallEvent)
}
