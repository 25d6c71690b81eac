package coerce

import (
	"math"
	"reflect"
)

// Kind is the structural category of a value. Classification looks at the
// value's shape, never at type names, so values from any package classify
// the same way.
type Kind int

const (
	// KindNull is a nil value or nil pointer/interface.
	KindNull Kind = iota
	// KindScalar is a bool, number, string, or other leaf value.
	KindScalar
	// KindSequence is a slice or array.
	KindSequence
	// KindMapping is a map or struct.
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// KindOf classifies a value into one of the four structural categories.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return KindNull
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map, reflect.Struct:
		return KindMapping
	default:
		return KindScalar
	}
}

// Truthy reports whether a value is truthy: nil, false, numeric zero, NaN,
// and the empty string are falsy; everything else, including empty
// containers, is truthy.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.String:
		return rv.Len() != 0
	default:
		return true
	}
}
