package model

import (
	"reflect"
	"time"
)

// emptier is implemented by values that know whether they hold anything.
// *Entity implements it, so entity references embedding a nil *Entity count
// as missing.
type emptier interface {
	Empty() bool
}

// IsEmpty reports whether v counts as missing for a required field: nil,
// the zero value of a scalar, the zero time, a nil pointer, an entity
// reference without an entity, or an empty string, slice or map.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case time.Time:
		return x.IsZero()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		if e, ok := v.(emptier); ok {
			return e.Empty()
		}
		return false
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	default:
		return false
	}
}
