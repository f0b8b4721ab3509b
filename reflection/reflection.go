// Package reflection reads and writes structure fields by name, exported or not.
package reflection

import (
	"reflect"
	"unsafe"

	"github.com/ARM-software/golang-combinators/commonerrors"
)

// GetStructureField returns the value of the field called fieldName in structure, which may be
// a structure or a pointer to a structure. found is false when there is no such field or when it is
// promoted through a nil embedded pointer.
func GetStructureField(structure any, fieldName string) (value any, found bool) {
	structValue, ok := toStructValue(structure)
	if !ok {
		return
	}
	if !structValue.CanAddr() {
		addressable := reflect.New(structValue.Type()).Elem()
		addressable.Set(structValue)
		structValue = addressable
	}
	field, err := fieldByName(structValue, fieldName)
	if err != nil {
		return
	}
	value = accessible(field).Interface()
	found = true
	return
}

// SetStructureField sets the field called fieldName of the structure pointed to by structure.
func SetStructureField(structure any, fieldName string, value any) error {
	ptr := reflect.ValueOf(structure)
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return commonerrors.Newf(commonerrors.ErrInvalid, "a non-nil pointer to a structure is expected but got %T", structure)
	}
	structValue, ok := toStructValue(structure)
	if !ok {
		return commonerrors.Newf(commonerrors.ErrInvalid, "a pointer to a structure is expected but got %T", structure)
	}
	field, err := fieldByName(structValue, fieldName)
	if err != nil {
		return commonerrors.Newf(commonerrors.ErrNotFound, "field %v of %T: %v", fieldName, structure, err.Error())
	}
	var newValue reflect.Value
	if value == nil {
		newValue = reflect.Zero(field.Type())
	} else {
		newValue = reflect.ValueOf(value)
	}
	if !newValue.Type().AssignableTo(field.Type()) {
		return commonerrors.Newf(commonerrors.ErrInvalid, "value of type %v cannot be assigned to field %v of type %v", newValue.Type(), fieldName, field.Type())
	}
	accessible(field).Set(newValue)
	return nil
}

// fieldByName is like reflect.Value.FieldByName but fails instead of panicking when the field is
// promoted through a nil embedded pointer.
func fieldByName(structValue reflect.Value, fieldName string) (reflect.Value, error) {
	structField, found := structValue.Type().FieldByName(fieldName)
	if !found {
		return reflect.Value{}, commonerrors.ErrNotFound
	}
	return structValue.FieldByIndexErr(structField.Index)
}

func toStructValue(structure any) (v reflect.Value, ok bool) {
	v = reflect.ValueOf(structure)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	ok = v.Kind() == reflect.Struct
	return
}

// accessible lifts the read-only flag set on unexported fields. field must be addressable.
func accessible(field reflect.Value) reflect.Value {
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
}
