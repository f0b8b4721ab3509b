/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package functional

import (
	"github.com/ARM-software/golang-combinators/commonerrors"
	"github.com/ARM-software/golang-combinators/field"
	"github.com/ARM-software/golang-combinators/reflection"
)

//
// Getters
//

// Getter returns a function fetching the entry stored at key in a map.
// found is false when the key is not present.
func Getter[M ~map[K]V, K comparable, V any](key K) func(M) (V, bool) {
	return func(m M) (v V, found bool) {
		v, found = m[key]
		return
	}
}

// GetterRef is like Getter but signals a missing key with nil.
func GetterRef[M ~map[K]V, K comparable, V any](key K) func(M) *V {
	get := Getter[M](key)
	return func(m M) *V {
		v, found := get(m)
		if !found {
			return nil
		}
		return field.ToOptional(v)
	}
}

// IndexGetter returns a function fetching the element at index in a slice.
// found is false when index is out of the slice bounds.
func IndexGetter[S ~[]E, E any](index int) func(S) (E, bool) {
	return func(s S) (e E, found bool) {
		if index < 0 || index >= len(s) {
			return
		}
		e = s[index]
		found = true
		return
	}
}

// FieldGetter returns a function fetching the field called name in a structure or pointer to a structure.
// Unexported fields can also be read.
func FieldGetter(name string) func(any) (any, bool) {
	return func(structure any) (any, bool) {
		return reflection.GetStructureField(structure, name)
	}
}

//
// Setters
//

// Setter returns a function storing a value at key in a map and returning the map.
// The map is modified in place; a nil map is allocated first.
func Setter[M ~map[K]V, K comparable, V any](key K) func(M, V) M {
	return func(m M, v V) M {
		if m == nil {
			m = make(M)
		}
		m[key] = v
		return m
	}
}

// IndexSetter returns a function storing a value at index in a slice and returning the slice.
// The slice is modified in place unless it must be extended to reach index, in which case the
// gap is filled with zero values.
func IndexSetter[S ~[]E, E any](index int) func(S, E) (S, error) {
	return func(s S, e E) (S, error) {
		if index < 0 {
			return s, commonerrors.Newf(commonerrors.ErrOutOfRange, "index %v is negative", index)
		}
		if index >= len(s) {
			s = append(s, make(S, index-len(s)+1)...)
		}
		s[index] = e
		return s, nil
	}
}

// FieldSetter returns a function setting the field called name of the structure pointed to by its first argument.
func FieldSetter(name string) func(any, any) error {
	return func(structure any, v any) error {
		return reflection.SetStructureField(structure, name, v)
	}
}
