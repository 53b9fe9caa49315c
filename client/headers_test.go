// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlatform int

const platformWeb testPlatform = 1

func (p testPlatform) String() string {
	if p == platformWeb {
		return "WEB"
	}
	return "UNKNOWN"
}

// ── prepareRequestHeaders ────────────────────────────────────────────────────

func TestPrepareRequestHeaders_DropsNilValues(t *testing.T) {
	headers := map[string]any{
		"Customer-Ip":       "127.0.0.1",
		"Customer-Session":  nil,
		"Customer-Language": nil,
	}

	prepared, err := prepareRequestHeaders(headers)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", prepared["Customer-Ip"])
	assert.NotContains(t, prepared, "Customer-Session")
	assert.NotContains(t, prepared, "Customer-Language")
}

func TestPrepareRequestHeaders_FillsDefaults(t *testing.T) {
	prepared, err := prepareRequestHeaders(nil)

	require.NoError(t, err)
	assert.Equal(t, contentTypeJSON, prepared[headerContentType])
	assert.Equal(t, contentTypeJSON, prepared[headerAccept])

	transactionID, parseErr := uuid.Parse(prepared[headerTransactionID])
	require.NoError(t, parseErr)
	assert.NotEqual(t, uuid.Nil, transactionID)
}

func TestPrepareRequestHeaders_CallerValuesNeverOverwritten(t *testing.T) {
	headers := map[string]any{
		headerContentType:   "application/xml",
		headerTransactionID: "caller-supplied-id",
	}

	prepared, err := prepareRequestHeaders(headers)

	require.NoError(t, err)
	assert.Equal(t, "application/xml", prepared[headerContentType])
	assert.Equal(t, "caller-supplied-id", prepared[headerTransactionID])
	// the remaining default is still filled
	assert.Equal(t, contentTypeJSON, prepared[headerAccept])
}

func TestPrepareRequestHeaders_MergedKeySet(t *testing.T) {
	headers := map[string]any{
		"Customer-Ip": "10.0.0.1",
		"Test-Header": "value",
	}

	prepared, err := prepareRequestHeaders(headers)

	require.NoError(t, err)
	// every caller key unchanged, every missing default filled, nothing else
	expectedKeys := []string{
		"Customer-Ip", "Test-Header",
		headerContentType, headerAccept, headerTransactionID,
	}
	assert.Len(t, prepared, len(expectedKeys))
	for _, key := range expectedKeys {
		assert.Contains(t, prepared, key)
	}
	assert.Equal(t, "10.0.0.1", prepared["Customer-Ip"])
	assert.Equal(t, "value", prepared["Test-Header"])
}

// ── serializeHeaderValue ─────────────────────────────────────────────────────

func TestSerializeHeaderValue_Stringers(t *testing.T) {
	id := uuid.MustParse("1b2c3d4e-0000-0000-0000-000000000001")

	got, err := serializeHeaderValue(id)
	require.NoError(t, err)
	assert.Equal(t, "1b2c3d4e-0000-0000-0000-000000000001", got)

	got, err = serializeHeaderValue(platformWeb)
	require.NoError(t, err)
	assert.Equal(t, "WEB", got)
}

func TestSerializeHeaderValue_Primitives(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "plain", want: "plain"},
		{name: "int", value: 42, want: "42"},
		{name: "bool", value: true, want: "true"},
		{name: "float", value: 1.5, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serializeHeaderValue(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializeHeaderValue_StructuredValue(t *testing.T) {
	got, err := serializeHeaderValue(struct {
		Site string `json:"site"`
	}{Site: "main"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"site":"main"}`, got)
}

func TestSerializeHeaderValue_MarshalFailurePropagates(t *testing.T) {
	_, err := serializeHeaderValue(make(chan int))

	require.Error(t, err)
}
