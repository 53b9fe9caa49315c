package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid API settings
	// (for example, missing endpoint or non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidAuthConfigs indicates invalid auth settings
	// (for example, missing client key, client secret, or auth endpoint).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
