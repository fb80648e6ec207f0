// Package serialization turns raw service JSON into values that fit the typed models.
//
// The service sends dates as ISO strings (or the older /Date(ms)/ form) and enums as
// names. A TypeInfo tree describes where those live in a payload so they can be
// coerced before the payload is decoded into Go structs.
package serialization

import (
	"sort"
	"strconv"
	"strings"
)

// TypeInfo describes the coercible fields of one contract type
type TypeInfo struct {
	// Fields maps JSON field names to their metadata
	Fields map[string]*FieldInfo
	// EnumValues is set when the type itself is an enum: name to numeric value
	EnumValues map[string]int
}

// FieldInfo describes how a single field (or array element / dictionary value) is coerced
type FieldInfo struct {
	TypeInfo *TypeInfo
	IsArray  bool
	IsDate   bool
	EnumType *TypeInfo

	IsDictionary             bool
	DictionaryKeyEnumType    *TypeInfo
	DictionaryValueTypeInfo  *TypeInfo
	DictionaryValueEnumType  *TypeInfo
	DictionaryValueFieldInfo *FieldInfo
}

// Date is shorthand for a date field
func Date() *FieldInfo {
	return &FieldInfo{IsDate: true}
}

// Enum is shorthand for an enum field
func Enum(enumType *TypeInfo) *FieldInfo {
	return &FieldInfo{EnumType: enumType}
}

// Object is shorthand for a nested contract field
func Object(ti *TypeInfo) *FieldInfo {
	return &FieldInfo{TypeInfo: ti}
}

// ArrayOf is shorthand for an array of nested contracts
func ArrayOf(ti *TypeInfo) *FieldInfo {
	return &FieldInfo{IsArray: true, TypeInfo: ti}
}

// EnumArray is shorthand for an array of enum values
func EnumArray(enumType *TypeInfo) *FieldInfo {
	return &FieldInfo{IsArray: true, EnumType: enumType}
}

// DateArray is shorthand for an array of dates
func DateArray() *FieldInfo {
	return &FieldInfo{IsArray: true, IsDate: true}
}

// EnumString renders value with the enum's names.
//
// Exact matches win. Otherwise the value is decomposed into the single-bit flags
// it contains, joined the way the service writes flag sets. Values that do not
// decompose are rendered as numbers.
func EnumString(t *TypeInfo, value int) string {
	if t == nil {
		return strconv.Itoa(value)
	}
	names := make([]string, 0, len(t.EnumValues))
	for name := range t.EnumValues {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		vi, vj := t.EnumValues[names[i]], t.EnumValues[names[j]]
		if vi == vj {
			return names[i] < names[j]
		}
		return vi < vj
	})
	for _, name := range names {
		if t.EnumValues[name] == value {
			return name
		}
	}
	var parts []string
	rest := value
	for _, name := range names {
		v := t.EnumValues[name]
		if v <= 0 || v&(v-1) != 0 {
			continue
		}
		if rest&v == v {
			parts = append(parts, name)
			rest &^= v
		}
	}
	if rest != 0 || len(parts) == 0 {
		return strconv.Itoa(value)
	}
	return strings.Join(parts, ", ")
}

// Extends returns a TypeInfo holding the fields of base plus fields, for
// contracts that embed another. Entries in fields win.
func Extends(base *TypeInfo, fields map[string]*FieldInfo) *TypeInfo {
	out := &TypeInfo{Fields: make(map[string]*FieldInfo, len(fields))}
	if base != nil {
		for name, f := range base.Fields {
			out.Fields[name] = f
		}
	}
	for name, f := range fields {
		out.Fields[name] = f
	}
	return out
}
