package serialization

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormatResponse decodes a response body into T after coercing it with ti.
//
// isCollection unwraps the {count, value} envelope list endpoints return. An
// empty body yields the zero value of T.
func FormatResponse[T any](body []byte, ti *TypeInfo, isCollection bool) (T, error) {
	var out T
	raw, err := Decode(body)
	if err != nil {
		return out, fmt.Errorf("failed to decode response: %w", err)
	}
	if raw == nil {
		return out, nil
	}
	coerced := Deserialize(raw, ti, isCollection)
	if p, ok := any(&out).(*any); ok {
		*p = coerced
		return out, nil
	}
	if err := materialize(coerced, &out); err != nil {
		return out, fmt.Errorf("failed to decode response into %T: %w", out, err)
	}
	return out, nil
}

// materialize moves a coerced tree into a typed value. Dates re-encode as RFC 3339
// which time.Time decodes without loss.
func materialize(tree any, dst any) error {
	buf, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, dst)
}

// Serialize renders a typed value as a JSON tree with enum values written as names.
//
// It is the inverse of Deserialize and is used where humans read the output.
func Serialize(value any, ti *TypeInfo) (any, error) {
	buf, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	tree, err := Decode(buf)
	if err != nil {
		return nil, err
	}
	return serializeValue(tree, ti), nil
}

func serializeValue(data any, ti *TypeInfo) any {
	if data == nil || ti == nil {
		return data
	}
	switch v := data.(type) {
	case []any:
		for i := range v {
			v[i] = serializeValue(v[i], ti)
		}
		return v
	case map[string]any:
		for name, field := range ti.Fields {
			if value, ok := v[name]; ok && value != nil {
				v[name] = serializeField(value, field)
			}
		}
		return v
	default:
		return data
	}
}

func serializeField(value any, field *FieldInfo) any {
	if field.IsArray {
		arr, ok := value.([]any)
		if !ok {
			return value
		}
		single := *field
		single.IsArray = false
		for i := range arr {
			arr[i] = serializeField(arr[i], &single)
		}
		return arr
	}
	switch {
	case field.IsDictionary && field.DictionaryValueTypeInfo != nil:
		if dict, ok := value.(map[string]any); ok {
			for k, v := range dict {
				dict[k] = serializeValue(v, field.DictionaryValueTypeInfo)
			}
		}
		return value
	case field.EnumType != nil:
		n, ok := value.(json.Number)
		if !ok {
			return value
		}
		i, err := n.Int64()
		if err != nil {
			return value
		}
		return EnumString(field.EnumType, int(i))
	case field.IsDate:
		if s, ok := value.(string); ok {
			if t, err := ParseDate(s); err == nil {
				return t.UTC().Format(time.RFC3339Nano)
			}
		}
		return value
	case field.TypeInfo != nil:
		return serializeValue(value, field.TypeInfo)
	}
	return value
}
