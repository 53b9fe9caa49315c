// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the SDK client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables over the library defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// API holds the service endpoint and per-request timeout settings.
	API API `envPrefix:"API_"`

	// Auth holds the credentials and auth endpoint used for the
	// client-credentials token exchange.
	Auth Auth `envPrefix:"AUTH_"`
}

// API holds network settings for outbound API calls.
type API struct {
	// Endpoint is the base URL of the API service
	// (e.g. "https://api.example.com"). Calls made with a relative URL are
	// resolved against it; calls made with an absolute URL bypass it.
	// Env: API_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single API call
	// before the transport cancels it (e.g. "10s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds settings for the token-refreshing auth collaborator.
type Auth struct {
	// ClientKey identifies the API consumer in the client-credentials
	// exchange. Sent as the basic-auth username.
	// Env: AUTH_CLIENT_KEY
	ClientKey string `env:"CLIENT_KEY"`

	// ClientSecret is the secret paired with ClientKey. Sent as the
	// basic-auth password. Must be kept confidential.
	// Env: AUTH_CLIENT_SECRET
	ClientSecret string `env:"CLIENT_SECRET"`

	// AuthEndpoint is the full URL of the token endpoint
	// (e.g. "https://api.example.com/identity/oauth2/v3/token").
	// Env: AUTH_ENDPOINT
	AuthEndpoint string `env:"ENDPOINT"`

	// RefreshMargin is how long before expiry a token is already considered
	// stale. A refresh check inside this window requests a new token.
	// Env: AUTH_REFRESH_MARGIN
	RefreshMargin time.Duration `env:"REFRESH_MARGIN"`

	// RequestTimeout bounds the token exchange request itself.
	// Env: AUTH_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig loads, merges, and validates the SDK configuration from all
// available sources in the following priority order (first source wins for
// non-zero fields):
//  1. Environment variables
//  2. Library defaults
//
// Returns a fully populated *ClientConfig or an error if a source fails to
// load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withDefaults().
		build()
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.Endpoint == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Auth.ClientKey == "" || cfg.Auth.ClientSecret == "" || cfg.Auth.AuthEndpoint == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
