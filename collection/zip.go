/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"
	"slices"
)

//
// Zip utilities
//

// Pair holds corresponding elements of two lists.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Length returns the number of elements of s.
func Length[S ~[]E, E any](s S) int {
	return len(s)
}

func shortest[T any](lists [][]T) int {
	n, err := ReduceFromFirst(Map(lists, Length[[]T]), func(a, b int) int {
		return min(a, b)
	})
	if err != nil {
		return 0
	}
	return n
}

// ZipSequence returns a sequence of tuples made of the elements found at the same index in every list.
// The sequence stops with the shortest list.
func ZipSequence[T any](lists ...[]T) iter.Seq[[]T] {
	inputs := slices.Clone(lists)
	n := shortest(inputs)
	return func(yield func([]T) bool) {
		for i := 0; i < n; i++ {
			tuple := Map(inputs, func(l []T) T { return l[i] })
			if !yield(tuple) {
				return
			}
		}
	}
}

// Zip zips multiple lists, e.g. `Zip([]int{1, 2, 3}, []int{4, 5}) == [][]int{{1, 4}, {2, 5}}`.
// All lists are truncated to the length of the shortest one. Zipping no list returns an empty slice
// and zipping a single list returns 1-tuples. Lists are never modified.
func Zip[T any](lists ...[]T) [][]T {
	result := make([][]T, 0, shortest(lists))
	return slices.AppendSeq(result, ZipSequence(lists...))
}

// Zip2 zips two lists of different element types into pairs, truncated to the shortest list.
func Zip2[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	result := make([]Pair[A, B], n)
	for i := range n {
		result[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return result
}
