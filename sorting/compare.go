package sorting

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"github.com/tablekit/tablekit/internal/fieldref"
)

// FieldComparator returns the default comparator for the named column: it
// reads the field off both rows and compares the raw values with
// CompareValues.
func FieldComparator[T any](key string) func(a, b T) int {
	return func(a, b T) int {
		av, aok := fieldref.Lookup(a, key)
		bv, bok := fieldref.Lookup(b, key)
		if !aok {
			av = nil
		}
		if !bok {
			bv = nil
		}
		return CompareValues(av, bv)
	}
}

// CompareValues compares two raw field values with generic ordering.
//
// Missing or nil values sort below all defined values; this is the documented
// ordering rule, never an error. Numbers compare numerically across widths,
// strings lexicographically, bools false before true, times chronologically.
// Values of other or mixed kinds fall back to comparing their text rendering.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if af, aok := asFloat64(a); aok {
		if bf, bok := asFloat64(b); bok {
			return cmp.Compare(af, bf)
		}
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	}

	return cmp.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
}

// asFloat64 widens any numeric value to float64 for comparison.
func asFloat64(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
