/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package functional

import (
	"slices"

	"github.com/ARM-software/golang-combinators/commonerrors"
)

// Compose composes functions from right to left i.e. `Compose(f, g)(x) == f(g(x))`.
// At least one function must be provided and none may be nil. If only one is, it is returned as is.
func Compose[T any](fns ...func(T) T) (func(T) T, error) {
	if len(fns) == 0 {
		return nil, commonerrors.New(commonerrors.ErrInvalidArity, "at least one function must be composed")
	}
	if err := checkDefined(fns); err != nil {
		return nil, err
	}
	if len(fns) == 1 {
		return fns[0], nil
	}
	stages := slices.Clone(fns)
	slices.Reverse(stages)
	return chain(stages), nil
}

// Pipe composes functions from left to right i.e. `Pipe(f, g)(x) == g(f(x))`.
// The same arity rules as Compose apply.
func Pipe[T any](fns ...func(T) T) (func(T) T, error) {
	if len(fns) == 0 {
		return nil, commonerrors.New(commonerrors.ErrInvalidArity, "at least one function must be piped")
	}
	if err := checkDefined(fns); err != nil {
		return nil, err
	}
	if len(fns) == 1 {
		return fns[0], nil
	}
	return chain(slices.Clone(fns)), nil
}

func checkDefined[T any](fns []func(T) T) error {
	for i := range fns {
		if fns[i] == nil {
			return commonerrors.UndefinedParameterf("function #%v is nil", i)
		}
	}
	return nil
}

func chain[T any](stages []func(T) T) func(T) T {
	return func(x T) T {
		for i := range stages {
			x = stages[i](x)
		}
		return x
	}
}

// Compose2 composes two functions of different types: `Compose2(f, g)(x) == f(g(x))`.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
