package collection

import (
	"iter"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

//
// Set operations
//

// UniqueEntries returns a slice containing the distinct values from the
// provided slice. The order of elements is not guaranteed.
func UniqueEntries[T comparable](slice []T) []T {
	subSet := mapset.NewSet[T]()
	_ = subSet.Append(slice...)
	return subSet.ToSlice()
}

// Unique returns the distinct values from the provided sequence.
// The order of elements is not guaranteed.
func Unique[T comparable](s iter.Seq[T]) []T {
	return UniqueEntries(slices.Collect(s))
}
