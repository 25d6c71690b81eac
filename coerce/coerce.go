// Package coerce resolves ambiguous values to canonical shapes: type tags,
// resource identifiers, request payloads, strings, and objects.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrParse indicates a value could not be parsed as a JSON object.
var ErrParse = errors.New("coerce: invalid JSON")

// TypeName returns the lowercase class tag of a value, derived from its
// structure: "null", "boolean", "number", "string", "array", "object",
// "function", "regexp", or "date".
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *regexp.Regexp:
		return "regexp"
	case time.Time, *time.Time:
		return "date"
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "null"
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Func:
		return "function"
	default:
		return "object"
	}
}

// ResolveID extracts the identifier from a resource-like value. Mappings
// yield their "id" field, falling back to "_id" when "id" is falsy;
// ObjectID values are hex-encoded. Anything that is not a mapping is
// already an id and is returned unchanged.
func ResolveID(v any) any {
	m, ok := asMapping(v)
	if !ok {
		return v
	}
	id := m["id"]
	if !Truthy(id) {
		id = m["_id"]
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}

// ResolvePayload returns the form-data override of a resource when present
// and truthy, else the resource itself.
func ResolvePayload(v any) any {
	m, ok := asMapping(v)
	if !ok {
		return v
	}
	if fd := m["formData"]; Truthy(fd) {
		return fd
	}
	return v
}

// ToString renders a value as a string: mappings and sequences are
// JSON-encoded, ObjectIDs hex-encoded, scalars stringified.
func ToString(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	switch KindOf(v) {
	case KindMapping, KindSequence:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return cast.ToString(v)
}

// ToObject returns a mapping unchanged, or parses any other value's string
// form as a JSON object. Returns ErrParse when the input is not valid JSON.
func ToObject(v any) (map[string]any, error) {
	if m, ok := asMapping(v); ok {
		return m, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(cast.ToString(v)), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m, nil
}

func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
