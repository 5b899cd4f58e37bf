/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-closures/commonerrors"
)

//
// Fold utilities
//
// Unlike reductions, folds have no starting value: the first element of the sequence is the initial accumulator.
// They are therefore undefined on empty sequences, which is reported as commonerrors.ErrEmptySequence.
//

// FoldFunc combines the accumulated value with the next element of a sequence.
type FoldFunc[T any] func(accumulator T, next T) T

// FoldWithErrorFunc is like FoldFunc but the combination may fail.
type FoldWithErrorFunc[T any] func(accumulator T, next T) (T, error)

// Fold combines all the elements of s from left to right using f, i.e. f(f(f(s0, s1), s2), ...).
// A single element is returned as is without calling f.
func Fold[T any](s []T, f FoldFunc[T]) (T, error) {
	return FoldSequence(slices.Values(s), f)
}

// FoldSequence is the same as Fold but works on a sequence.
func FoldSequence[T any](s iter.Seq[T], f FoldFunc[T]) (T, error) {
	var fWithError FoldWithErrorFunc[T]
	if f != nil {
		fWithError = func(accumulator T, next T) (T, error) {
			return f(accumulator, next), nil
		}
	}
	return FoldSequenceWithError(s, fWithError)
}

// FoldWithError is similar to Fold but stops at the first error returned by f.
func FoldWithError[T any](s []T, f FoldWithErrorFunc[T]) (T, error) {
	return FoldSequenceWithError(slices.Values(s), f)
}

// FoldSequenceWithError is similar to FoldSequence but stops at the first error returned by f.
// The value accumulated before the failing combination is returned alongside the error.
// f is only required when there is something to combine: an empty sequence is always an
// ErrEmptySequence and a single element is returned even if f is nil.
func FoldSequenceWithError[T any](s iter.Seq[T], f FoldWithErrorFunc[T]) (result T, err error) {
	if s == nil {
		err = commonerrors.New(commonerrors.ErrEmptySequence, "cannot fold an undefined sequence")
		return
	}
	started := false
	for e := range s {
		if !started {
			result = e
			started = true
			continue
		}
		if f == nil {
			err = commonerrors.New(commonerrors.ErrUndefined, "missing combining function")
			return
		}
		next, subErr := f(result, e)
		if subErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, subErr, "fold failed when combining [%v]", e)
			return
		}
		result = next
	}
	if !started {
		err = commonerrors.New(commonerrors.ErrEmptySequence, "cannot fold a sequence without any element")
	}
	return
}
