// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OpenVoyage Labs

package client

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
	"github.com/google/uuid"
)

const (
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	headerTransactionID = "Transaction-Id"
	headerAuthorization = "Authorization"

	contentTypeJSON = "application/json"
)

// prepareRequestHeaders normalizes caller-supplied headers into the final
// transmit mapping: nil values are dropped, the rest are serialized to their
// canonical string form, and the default header set fills only the keys the
// caller left out.
func prepareRequestHeaders(headers map[string]any) (map[string]string, error) {
	requestHeaders := make(map[string]string, len(headers))
	for key, value := range headers {
		if value == nil {
			continue
		}

		serialized, err := serializeHeaderValue(value)
		if err != nil {
			return nil, fmt.Errorf("serialize header %q: %w", key, err)
		}
		requestHeaders[key] = serialized
	}

	return fillRequestHeaders(requestHeaders)
}

// serializeHeaderValue renders a header value as a string. Stringer types
// (UUIDs, enums) use their canonical form, primitives are printed as-is, and
// anything structured is JSON-serialized. Marshal failures propagate.
func serializeHeaderValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v), nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
}

// fillRequestHeaders merges the default header set into requestHeaders; keys
// already present are never touched. The Transaction-Id default is a fresh
// UUID per call so every request is traceable end to end.
func fillRequestHeaders(requestHeaders map[string]string) (map[string]string, error) {
	defaults := map[string]string{
		headerContentType:   contentTypeJSON,
		headerAccept:        contentTypeJSON,
		headerTransactionID: newTransactionID(),
	}

	if err := mergo.Merge(&requestHeaders, defaults); err != nil {
		return nil, fmt.Errorf("fill default headers: %w", err)
	}

	return requestHeaders, nil
}

func newTransactionID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
