// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

// Package auth implements the token-refreshing auth collaborator used by the
// API client.
//
// [BearerClient] exchanges a client key/secret pair for a bearer token via
// the client-credentials grant and keeps the token fresh across calls. The
// token is renewed only when it is missing or about to expire, so calling
// RefreshToken before every API call is cheap.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/openvoyage/sdk-go/config"
	"github.com/openvoyage/sdk-go/logger"
	"github.com/openvoyage/sdk-go/models"
)

// BearerClient obtains and renews bearer tokens through the
// client-credentials grant. It is safe for concurrent use; token state is
// guarded by an internal mutex.
type BearerClient struct {
	client   *resty.Client
	endpoint string
	key      string
	secret   string
	margin   time.Duration

	mu     sync.Mutex
	token  string
	expiry time.Time

	logger *logger.Logger
}

// NewBearerClient constructs a [BearerClient] from the auth configuration.
//
// Returns an error if the auth endpoint or either credential is empty.
func NewBearerClient(authCfg config.Auth, log *logger.Logger) (*BearerClient, error) {
	endpoint := strings.TrimSpace(authCfg.AuthEndpoint)
	if endpoint == "" || authCfg.ClientKey == "" || authCfg.ClientSecret == "" {
		return nil, fmt.Errorf("new bearer client: %w", config.ErrInvalidAuthConfigs)
	}

	margin := authCfg.RefreshMargin
	if margin <= 0 {
		margin = config.DefaultRefreshMargin
	}

	client := resty.New().SetTimeout(authCfg.RequestTimeout)

	return &BearerClient{
		client:   client,
		endpoint: endpoint,
		key:      authCfg.ClientKey,
		secret:   authCfg.ClientSecret,
		margin:   margin,
		logger:   log,
	}, nil
}

// RefreshToken ensures the held token is valid for at least the configured
// refresh margin. A valid token makes this a no-op; otherwise a new token is
// requested from the auth endpoint with the client credentials.
//
// Returns a wrapped transport error if the request fails, or [ErrTokenRejected]
// (wrapped) if the server answers with a non-2xx status or an empty token.
func (b *BearerClient) RefreshToken(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.aboutToExpire() {
		return nil
	}

	var tokenResponse models.TokenResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetBasicAuth(b.key, b.secret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tokenResponse).
		Post(b.endpoint)
	if err != nil {
		return fmt.Errorf("token request: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", ErrTokenRejected, resp.StatusCode())
	}
	if tokenResponse.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrTokenRejected)
	}

	b.token = tokenResponse.AccessToken
	b.expiry = resolveExpiry(tokenResponse)

	b.logger.Debug().
		Time("expiry", b.expiry).
		Msg("auth token refreshed")

	return nil
}

// AuthHeader returns the Authorization header value for the held token in
// "Bearer <token>" form, or an empty string before the first refresh.
func (b *BearerClient) AuthHeader() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.token == "" {
		return ""
	}
	return "Bearer " + b.token
}

// aboutToExpire reports whether the held token is missing, of unknown
// lifetime, or inside the refresh margin. Callers must hold b.mu.
func (b *BearerClient) aboutToExpire() bool {
	if b.token == "" || b.expiry.IsZero() {
		return true
	}
	return time.Until(b.expiry) <= b.margin
}

// resolveExpiry derives the token expiry from the token response. The
// server-reported expires_in wins; when absent, the token is parsed as a JWT
// (without signature verification, the expiry is advisory only) and the exp
// claim is used. A zero time means the lifetime is unknown and the next
// refresh check will request a new token.
func resolveExpiry(tokenResponse models.TokenResponse) time.Time {
	if tokenResponse.ExpiresIn > 0 {
		return time.Now().Add(time.Duration(tokenResponse.ExpiresIn) * time.Second)
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenResponse.AccessToken, claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}

	return time.Time{}
}
