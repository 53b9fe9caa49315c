package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResponseShape is a typed decode capability: a single attempt to parse a
// raw JSON body into one concrete shape, failing with an error when the body
// does not fit.
type ResponseShape interface {
	// Decode parses data into the shape's concrete type and returns the
	// typed value, or an error if the body does not match.
	Decode(data []byte) (any, error)
}

// NoBody is the placeholder shape for calls that expect an empty response
// body. It is skipped during resolution, so a shape list of only NoBody
// always yields an empty result.
var NoBody ResponseShape

// ShapeOf returns the [ResponseShape] for the concrete type T. Decoding is
// strict: a body carrying members unknown to T does not match, which is what
// makes ordered candidate lists meaningful. Shapes registered in an
// [ErrorShapes] table are instead decoded leniently (see decodeErrorBody).
func ShapeOf[T any]() ResponseShape {
	return shape[T]{}
}

type shape[T any] struct{}

func (shape[T]) Decode(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var value T
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode response shape: %w", err)
	}

	return value, nil
}

func (shape[T]) decodeLenient(data []byte) (any, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("decode response shape: %w", err)
	}

	return value, nil
}

// lenientDecoder is the optional relaxed decode capability of a shape.
type lenientDecoder interface {
	decodeLenient(data []byte) (any, error)
}

// decodeErrorBody decodes an error response body against a registered error
// shape. Error bodies routinely carry members the shape does not declare
// (trace ids, timestamps), and an extra member must not defeat the
// registered mapping, so decoding is lenient whenever the shape supports
// it. Custom [ResponseShape] implementations fall back to their own Decode.
func decodeErrorBody(errorShape ResponseShape, data []byte) (any, error) {
	if lenient, ok := errorShape.(lenientDecoder); ok {
		return lenient.decodeLenient(data)
	}

	return errorShape.Decode(data)
}
