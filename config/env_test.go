// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"API_ENDPOINT":        "https://api.example.com",
		"API_REQUEST_TIMEOUT": "15s",

		"AUTH_CLIENT_KEY":      "key123",
		"AUTH_CLIENT_SECRET":   "secret456",
		"AUTH_ENDPOINT":        "https://api.example.com/oauth2/token",
		"AUTH_REFRESH_MARGIN":  "30s",
		"AUTH_REQUEST_TIMEOUT": "5s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)

	assert.Equal(t, "key123", cfg.Auth.ClientKey)
	assert.Equal(t, "secret456", cfg.Auth.ClientSecret)
	assert.Equal(t, "https://api.example.com/oauth2/token", cfg.Auth.AuthEndpoint)
	assert.Equal(t, 30*time.Second, cfg.Auth.RefreshMargin)
	assert.Equal(t, 5*time.Second, cfg.Auth.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_ENDPOINT": "https://api.example.com",
	})

	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.API.Endpoint)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Empty(t, cfg.Auth.ClientKey)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()
	for key, value := range envVars {
		t.Setenv(key, value)
	}
}
