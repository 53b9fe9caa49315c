package models

// TokenResponse is the body returned by the auth endpoint on a successful
// client-credentials exchange.
type TokenResponse struct {
	// AccessToken is the bearer token to attach to subsequent API calls.
	AccessToken string `json:"access_token"`

	// TokenType is the token scheme reported by the server, normally
	// "bearer".
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the token lifetime in seconds from the moment of issue.
	// Zero when the server does not report a lifetime.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}
