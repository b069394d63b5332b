// Package fieldref resolves named fields on arbitrary row values.
//
// Rows are opaque to the rest of the library; when a column has no explicit
// accessor the pipeline falls back to this package to read the column's field
// by name. Structs (and pointers to structs) and string-keyed maps are
// supported. Struct lookups are cached per concrete type.
package fieldref

import (
	"reflect"
	"strings"
	"sync"
)

var (
	mu    sync.RWMutex
	cache = map[reflect.Type]map[string]int{}
)

// fieldIndex returns the exported-field index table for a struct type,
// keyed by lowercased field name.
func fieldIndex(t reflect.Type) map[string]int {
	mu.RLock()
	idx, ok := cache[t]
	mu.RUnlock()
	if ok {
		return idx
	}

	idx = make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		idx[strings.ToLower(f.Name)] = i
	}

	mu.Lock()
	cache[t] = idx
	mu.Unlock()
	return idx
}

// Lookup resolves the value of the named field on row.
// Field names match case-insensitively for structs; map keys match exactly.
// ok is false when the field does not exist on this row.
func Lookup(row any, key string) (value any, ok bool) {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		idx, exists := fieldIndex(v.Type())[strings.ToLower(key)]
		if !exists {
			return nil, false
		}
		return v.Field(idx).Interface(), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(key))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	default:
		return nil, false
	}
}

// Fields returns the values of every own field of row: exported struct
// fields in declaration order, or map values in unspecified order.
// Non-struct, non-map rows yield the row itself as a single field.
func Fields(row any) []any {
	v := reflect.ValueOf(row)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		out := make([]any, 0, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			out = append(out, v.Field(i).Interface())
		}
		return out
	case reflect.Map:
		out := make([]any, 0, v.Len())
		for it := v.MapRange(); it.Next(); {
			out = append(out, it.Value().Interface())
		}
		return out
	default:
		return []any{row}
	}
}
