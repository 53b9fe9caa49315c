package client

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// isEmptyBody reports whether body counts as absent: nil, or a typed nil
// pointer/map/slice. Absent bodies produce a bodyless request.
func isEmptyBody(body any) bool {
	if body == nil {
		return true
	}

	v := reflect.ValueOf(body)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// marshalRequestBody serializes body to its transport JSON. Members that the
// caller never set are omitted via the usual omitempty convention; members
// explicitly set to null are stripped afterwards, so neither reaches the
// wire.
func marshalRequestBody(body any) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("normalize request body: %w", err)
	}

	return json.Marshal(stripNullMembers(decoded))
}

// stripNullMembers removes null-valued object members at every nesting
// level. Null elements inside arrays are positional and stay.
func stripNullMembers(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, member := range v {
			if member == nil {
				delete(v, key)
				continue
			}
			v[key] = stripNullMembers(member)
		}
		return v
	case []any:
		for i := range v {
			v[i] = stripNullMembers(v[i])
		}
		return v
	default:
		return value
	}
}
