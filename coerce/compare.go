package coerce

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ErrUnsupportedOperator indicates Compare was given an operator outside the
// supported set.
var ErrUnsupportedOperator = errors.New("coerce: unsupported operator")

// Compare evaluates `v1 <op> v2` for op in ===, !==, ==, !=, >, <, >=, <=.
// Strict equality compares numbers by value and everything else by same-type
// deep equality; loose equality additionally matches values whose numeric
// coercions agree. Ordering is numeric when both operands coerce to numbers,
// lexicographic when both are strings, and false otherwise.
func Compare(v1 any, op string, v2 any) (bool, error) {
	switch op {
	case "===":
		return strictEqual(v1, v2), nil
	case "!==":
		return !strictEqual(v1, v2), nil
	case "==":
		return looseEqual(v1, v2), nil
	case "!=":
		return !looseEqual(v1, v2), nil
	case ">", "<", ">=", "<=":
		return ordered(v1, op, v2), nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedOperator, op)
	}
}

func strictEqual(v1, v2 any) bool {
	f1, ok1 := asNumber(v1)
	f2, ok2 := asNumber(v2)
	if ok1 || ok2 {
		return ok1 && ok2 && f1 == f2
	}
	return reflect.DeepEqual(v1, v2)
}

func looseEqual(v1, v2 any) bool {
	if strictEqual(v1, v2) {
		return true
	}
	f1, err1 := cast.ToFloat64E(v1)
	f2, err2 := cast.ToFloat64E(v2)
	return err1 == nil && err2 == nil && f1 == f2
}

func ordered(v1 any, op string, v2 any) bool {
	f1, err1 := cast.ToFloat64E(v1)
	f2, err2 := cast.ToFloat64E(v2)
	if err1 == nil && err2 == nil {
		switch op {
		case ">":
			return f1 > f2
		case "<":
			return f1 < f2
		case ">=":
			return f1 >= f2
		case "<=":
			return f1 <= f2
		}
	}
	s1, ok1 := v1.(string)
	s2, ok2 := v2.(string)
	if ok1 && ok2 {
		switch op {
		case ">":
			return s1 > s2
		case "<":
			return s1 < s2
		case ">=":
			return s1 >= s2
		case "<=":
			return s1 <= s2
		}
	}
	// incomparable operands order as false, never as an error
	return false
}

// asNumber reports a value's float64 form when its underlying kind is
// numeric. String-to-number conversion is deliberately excluded here; that
// is loose equality's job.
func asNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
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
