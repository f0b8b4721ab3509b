// Package value provides checks on dynamically typed values.
package value

import (
	"math"
	"reflect"
)

// IsTruthy reports whether v counts as true when used as a condition.
// nil, false, numeric zeros, NaN, "" and nil references are falsy; every other value,
// including empty but allocated slices and maps, is truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	switch typed := v.(type) {
	case bool:
		return typed
	case string:
		return typed != ""
	}
	objValue := reflect.ValueOf(v)
	switch objValue.Kind() {
	case reflect.Bool:
		return objValue.Bool()
	case reflect.String:
		return objValue.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return objValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return objValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := objValue.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return objValue.Complex() != 0
	case reflect.Ptr, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return !objValue.IsNil()
	default:
		return true
	}
}

// IsFalsy is the negation of IsTruthy.
func IsFalsy(v any) bool {
	return !IsTruthy(v)
}
