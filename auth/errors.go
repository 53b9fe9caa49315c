package auth

import "errors"

// ErrTokenRejected indicates the auth endpoint refused the credentials or
// returned an unusable token response.
var ErrTokenRejected = errors.New("auth token request rejected")
