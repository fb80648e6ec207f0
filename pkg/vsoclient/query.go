package vsoclient

import (
	"bytes"
	"encoding/json"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"time"
)

// QueryString renders query values as "?k=v&..." or "" when nothing is set.
//
// Keys are sorted. Nil, false, zero numbers, empty strings and empty slices are
// skipped. Slices are
// joined with commas. Maps and structs are flattened into "parent.child" keys.
// Times use the HTTP date format.
func QueryString(values Values) string {
	var b strings.Builder
	appendQuery(&b, "", values)
	if b.Len() == 0 {
		return ""
	}
	return "?" + strings.TrimSuffix(b.String(), "&")
}

func appendQuery(b *strings.Builder, prefix string, value any) {
	v, ok := indirect(value)
	if !ok || !truthy(v) {
		return
	}

	switch x := v.(type) {
	case time.Time:
		writePair(b, prefix, x.UTC().Format(http.TimeFormat))
		return
	case Values:
		appendMap(b, prefix, x)
		return
	case map[string]any:
		appendMap(b, prefix, x)
		return
	case json.Number:
		writePair(b, prefix, x.String())
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if elem, ok := indirect(rv.Index(i).Interface()); ok {
				parts = append(parts, formatScalar(elem))
			}
		}
		writePair(b, prefix, strings.Join(parts, ","))
		return
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		appendMap(b, prefix, m)
		return
	case reflect.Struct:
		if m, ok := structToMap(v); ok {
			appendMap(b, prefix, m)
			return
		}
	}

	writePair(b, prefix, formatScalar(v))
}

func appendMap(b *strings.Builder, prefix string, m map[string]any) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		appendQuery(b, prefix+encodeURIComponent(k)+".", m[k])
	}
}

// writePair writes "key=value&" where prefix is the encoded key plus a trailing dot
func writePair(b *strings.Builder, prefix, value string) {
	if prefix == "" || value == "" {
		return
	}
	b.WriteString(prefix[:len(prefix)-1])
	b.WriteByte('=')
	b.WriteString(encodeURIComponent(value))
	b.WriteByte('&')
}

// structToMap converts a contract struct into its JSON field map, honoring omitempty
func structToMap(v any) (map[string]any, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, false
	}
	return m, true
}
