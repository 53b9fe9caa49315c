package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	Name     string  `json:"name,omitempty"`
	Nickname *string `json:"nickname"`
	Age      int     `json:"age,omitempty"`
}

// ── isEmptyBody ──────────────────────────────────────────────────────────────

func TestIsEmptyBody(t *testing.T) {
	var typedNil *bookingRequest
	var nilMap map[string]any
	var nilSlice []string

	tests := []struct {
		name string
		body any
		want bool
	}{
		{name: "nil", body: nil, want: true},
		{name: "typed nil pointer", body: typedNil, want: true},
		{name: "nil map", body: nilMap, want: true},
		{name: "nil slice", body: nilSlice, want: true},
		{name: "zero struct", body: bookingRequest{}, want: false},
		{name: "non-nil pointer", body: &bookingRequest{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isEmptyBody(tt.body))
		})
	}
}

// ── marshalRequestBody ───────────────────────────────────────────────────────

func TestMarshalRequestBody_OmitsUnsetAndNullMembers(t *testing.T) {
	// Age never set (omitempty), Nickname explicitly null: neither is sent
	raw, err := marshalRequestBody(bookingRequest{Name: "alice"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"alice"}`, string(raw))
}

func TestMarshalRequestBody_NestedNullMembers(t *testing.T) {
	body := map[string]any{
		"guest": map[string]any{
			"name":  "alice",
			"email": nil,
		},
		"note": nil,
	}

	raw, err := marshalRequestBody(body)

	require.NoError(t, err)
	assert.JSONEq(t, `{"guest":{"name":"alice"}}`, string(raw))
}

func TestMarshalRequestBody_ArrayElementsKeepPosition(t *testing.T) {
	raw, err := marshalRequestBody([]any{"a", nil, "c"})

	require.NoError(t, err)
	assert.JSONEq(t, `["a",null,"c"]`, string(raw))
}

func TestMarshalRequestBody_MarshalFailurePropagates(t *testing.T) {
	_, err := marshalRequestBody(map[string]any{"ch": make(chan int)})

	require.Error(t, err)
}
