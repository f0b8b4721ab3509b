package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-combinators/commonerrors"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReduceSequence(slices.Values(s), accumulator, f)
}

// ReduceSequence folds over a sequence using f, starting with accumulator.
func ReduceSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	for e := range s {
		result = f(result, e)
	}
	return result
}

// ReduceFromFirst folds over the slice s using f, the first element serving as initial accumulator.
// A single element is returned without calling f. An ErrEmpty error is returned if s has no element.
// s is never modified.
func ReduceFromFirst[T any](s []T, f ReduceFunc[T, T]) (result T, err error) {
	if len(s) == 0 {
		err = commonerrors.New(commonerrors.ErrEmpty, "reduction requires either elements or an initial value")
		return
	}
	result = Reduce(s[1:], s[0], f)
	return
}

// ReduceSequenceFromFirst is like ReduceFromFirst for sequences.
func ReduceSequenceFromFirst[T any](s iter.Seq[T], f ReduceFunc[T, T]) (result T, err error) {
	seeded := false
	for e := range s {
		if !seeded {
			result = e
			seeded = true
			continue
		}
		result = f(result, e)
	}
	if !seeded {
		err = commonerrors.New(commonerrors.ErrEmpty, "reduction requires either elements or an initial value")
	}
	return
}
