package config

import "time"

// Library defaults. Endpoint and credentials have no defaults and must be
// supplied by the environment or by the host application.
const (
	// DefaultRequestTimeout bounds a single API call.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultRefreshMargin is how long before expiry a token is refreshed.
	DefaultRefreshMargin = 10 * time.Second

	// DefaultAuthRequestTimeout bounds the token exchange request.
	DefaultAuthRequestTimeout = 10 * time.Second
)

func defaultConfig() *ClientConfig {
	return &ClientConfig{
		API: API{
			RequestTimeout: DefaultRequestTimeout,
		},
		Auth: Auth{
			RefreshMargin:  DefaultRefreshMargin,
			RequestTimeout: DefaultAuthRequestTimeout,
		},
	}
}
