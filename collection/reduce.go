package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-closures/commonerrors"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// ReduceWithErrorFunc is like ReduceFunc but the combination may fail.
type ReduceWithErrorFunc[T1, T2 any] func(T2, T1) (T2, error)

// Reduce folds over the slice s using f, starting with accumulator.
// An empty slice returns the accumulator unchanged.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence folds over a sequence using f, starting with accumulator.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result := accumulator
	if s == nil {
		return result
	}
	for e := range s {
		result = f(result, e)
	}
	return result
}

// ReduceWithError is similar to Reduce but stops at the first error returned by f.
// The accumulator reached before the failing element is returned alongside the error.
func ReduceWithError[T1, T2 any](s []T1, accumulator T2, f ReduceWithErrorFunc[T1, T2]) (T2, error) {
	return ReducesSequenceWithError(slices.Values(s), accumulator, f)
}

// ReducesSequenceWithError is similar to ReducesSequence but stops at the first error returned by f.
func ReducesSequenceWithError[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceWithErrorFunc[T1, T2]) (result T2, err error) {
	result = accumulator
	if f == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing reducing function")
		return
	}
	if s == nil {
		return
	}
	idx := 0
	for e := range s {
		next, subErr := f(result, e)
		if subErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, subErr, "reduction failed at element #%v [%v]", idx, e)
			return
		}
		result = next
		idx++
	}
	return
}
