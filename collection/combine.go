package collection

import (
	"github.com/ARM-software/golang-closures/safecast"
)

//
// Operators as combining functions
//

// Add returns a + b. It can be passed wherever a FoldFunc is expected.
func Add[T safecast.INumber](a, b T) T {
	return a + b
}

// Multiply returns a * b.
func Multiply[T safecast.INumber](a, b T) T {
	return a * b
}

// Min returns the smallest of a and b.
func Min[T safecast.INumber](a, b T) T {
	return min(a, b)
}

// Max returns the largest of a and b.
func Max[T safecast.INumber](a, b T) T {
	return max(a, b)
}

// Sum returns the arithmetic sum of all the values in s.
// As for Fold, an empty slice is reported as commonerrors.ErrEmptySequence.
func Sum[T safecast.INumber](s []T) (T, error) {
	return Fold(s, Add[T])
}

// Product returns the arithmetic product of all the values in s.
func Product[T safecast.INumber](s []T) (T, error) {
	return Fold(s, Multiply[T])
}
