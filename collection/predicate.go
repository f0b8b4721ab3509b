/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides combinators working on slices or sequences. Combinators taking
// several lists zip them first, so that they iterate over the lists simultaneously and stop with
// the shortest one. Lists are always passed as separate arguments: a single [][]T argument is
// one list whose elements happen to be lists.
package collection

import "github.com/ARM-software/golang-combinators/functional"

//
// Any / All / None over zipped lists
//

// AnyN returns true as soon as f holds for the arguments taken at the same index in every list.
// It returns false if no such set of arguments exists, including when the lists are empty.
func AnyN[T any](f func(...T) bool, lists ...[]T) bool {
	for args := range ZipSequence(lists...) {
		if f(args...) {
			return true
		}
	}
	return false
}

// AllN returns false as soon as f does not hold for the arguments taken at the same index in every list.
// Otherwise, including when the lists are empty, it returns true.
func AllN[T any](f func(...T) bool, lists ...[]T) bool {
	for args := range ZipSequence(lists...) {
		if !f(args...) {
			return false
		}
	}
	return true
}

// NoneN returns true if f holds for no set of arguments. It is the negation of AnyN.
func NoneN[T any](f func(...T) bool, lists ...[]T) bool {
	return !AnyN(f, lists...)
}

// AnyTruthy is like AnyN for functions whose result is interpreted by its truthiness.
func AnyTruthy[T any](f func(...T) any, lists ...[]T) bool {
	return AnyN(functional.ToPredicate(f), lists...)
}

// AllTruthy is like AllN for functions whose result is interpreted by its truthiness.
func AllTruthy[T any](f func(...T) any, lists ...[]T) bool {
	return AllN(functional.ToPredicate(f), lists...)
}

// NoneTruthy is like NoneN for functions whose result is interpreted by its truthiness.
func NoneTruthy[T any](f func(...T) any, lists ...[]T) bool {
	return NoneN(functional.ToPredicate(f), lists...)
}

//
// Any / All / None over a single list
//

func unary[E any](f Predicate[E]) func(...E) bool {
	return func(args ...E) bool { return f(args[0]) }
}

// AnyFunc returns true if at least one element in s satisfies f.
func AnyFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return AnyN[E](unary(f), s)
}

// AllFunc returns true if f returns true for every element in s.
func AllFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return AllN[E](unary(f), s)
}

// NoneFunc returns true if no element of s satisfies f.
func NoneFunc[S ~[]E, E any](s S, f Predicate[E]) bool {
	return NoneN[E](unary(f), s)
}
