package serialization

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Deserialize coerces a decoded JSON value in place according to ti.
//
// data is the output of encoding/json decoding into any. When unwrap is set and
// data is a {count, value} collection envelope, the inner array is returned and
// a null value reads as an empty collection. Date fields become time.Time and
// enum names become ints; unparseable dates and unknown enum names are dropped.
// Fields without metadata are left as they are.
func Deserialize(data any, ti *TypeInfo, unwrap bool) any {
	if data == nil {
		return nil
	}
	if unwrap {
		if m, ok := data.(map[string]any); ok {
			if arr, ok := m["value"].([]any); ok {
				data = arr
			} else if isEmptyEnvelope(m) {
				return []any{}
			}
		}
	}
	if ti == nil {
		return data
	}
	switch v := data.(type) {
	case []any:
		return deserializeArray(v, ti)
	case map[string]any:
		return deserializeObject(v, ti)
	default:
		return data
	}
}

// isEmptyEnvelope matches {"count": n, "value": null}
func isEmptyEnvelope(m map[string]any) bool {
	value, hasValue := m["value"]
	_, hasCount := m["count"]
	return hasValue && hasCount && value == nil
}

func deserializeArray(arr []any, ti *TypeInfo) []any {
	for i, item := range arr {
		arr[i] = Deserialize(item, ti, false)
	}
	return arr
}

func deserializeObject(obj map[string]any, ti *TypeInfo) map[string]any {
	for name, field := range ti.Fields {
		value, ok := obj[name]
		if !ok || value == nil {
			continue
		}
		coerced, keep := deserializeField(value, field)
		if !keep {
			delete(obj, name)
			continue
		}
		obj[name] = coerced
	}
	return obj
}

// deserializeField returns the coerced value and whether it should be kept.
// Enum names that cannot be resolved and date strings that cannot be parsed are
// dropped.
func deserializeField(value any, field *FieldInfo) (any, bool) {
	if field.IsArray {
		arr, ok := value.([]any)
		if !ok {
			return value, true
		}
		single := *field
		single.IsArray = false
		out := arr[:0]
		for _, item := range arr {
			if item == nil {
				out = append(out, nil)
				continue
			}
			if v, keep := deserializeField(item, &single); keep {
				out = append(out, v)
			}
		}
		return out, true
	}

	if field.IsDictionary {
		dict, ok := value.(map[string]any)
		if !ok {
			return value, true
		}
		out := make(map[string]any, len(dict))
		for key, v := range dict {
			newKey := key
			if field.DictionaryKeyEnumType != nil {
				n, ok := EnumValue(field.DictionaryKeyEnumType, key)
				if !ok {
					continue
				}
				newKey = strconv.Itoa(n)
			}
			switch {
			case v == nil:
			case field.DictionaryValueTypeInfo != nil:
				v = Deserialize(v, field.DictionaryValueTypeInfo, false)
			case field.DictionaryValueEnumType != nil:
				if s, ok := v.(string); ok {
					n, found := EnumValue(field.DictionaryValueEnumType, s)
					if !found {
						continue
					}
					v = n
				}
			case field.DictionaryValueFieldInfo != nil:
				var keep bool
				if v, keep = deserializeField(v, field.DictionaryValueFieldInfo); !keep {
					continue
				}
			}
			out[newKey] = v
		}
		return out, true
	}

	if field.IsDate {
		if s, ok := value.(string); ok {
			t, err := ParseDate(s)
			if err != nil {
				return nil, false
			}
			return t, true
		}
		return value, true
	}

	if field.EnumType != nil {
		switch v := value.(type) {
		case string:
			n, ok := EnumValue(field.EnumType, v)
			if !ok {
				return nil, false
			}
			return n, true
		default:
			return value, true
		}
	}

	if field.TypeInfo != nil {
		return Deserialize(value, field.TypeInfo, false), true
	}

	return value, true
}

// EnumValue resolves an enum name to its numeric value.
//
// Names match case-insensitively. A comma separated list is treated as a set of
// flags and OR'd together. Numeric strings are accepted as-is.
func EnumValue(enumType *TypeInfo, name string) (int, bool) {
	if enumType == nil {
		return 0, false
	}
	if v, ok := enumType.EnumValues[name]; ok {
		return v, true
	}
	for k, v := range enumType.EnumValues {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	if strings.Contains(name, ",") {
		result := 0
		for _, part := range strings.Split(name, ",") {
			v, ok := EnumValue(enumType, strings.TrimSpace(part))
			if !ok {
				return 0, false
			}
			result |= v
		}
		return result, true
	}
	if n, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
		return n, true
	}
	return 0, false
}

// Decode parses body keeping numbers exact
func Decode(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}
