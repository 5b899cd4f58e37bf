package generator

import (
	"iter"

	"github.com/ARM-software/golang-closures/commonerrors"
)

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc[T any] func() (T, error)

// Next calls f.
func (f GeneratorFunc[T]) Next() (T, error) {
	return f()
}

// ToFunc returns a function calling g.Next.
func ToFunc[T any](g Generator[T]) func() (T, error) {
	if g == nil {
		return func() (value T, err error) {
			err = commonerrors.New(commonerrors.ErrUndefined, "missing generator")
			return
		}
	}
	return g.Next
}

// Take returns the next n values of g. It stops at the first error and returns the values generated until then.
func Take[T any](g Generator[T], n int) (values []T, err error) {
	if g == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing generator")
		return
	}
	values = make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		v, subErr := g.Next()
		if subErr != nil {
			err = subErr
			return
		}
		values = append(values, v)
	}
	return
}

// Sequence returns an unbounded iterator over the values of g.
// If g fails, the error is yielded and iteration stops.
func Sequence[T any](g Generator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next := ToFunc(g)
		for {
			v, err := next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Values returns an iterator over at most n values of g. It stops silently as soon as g fails.
func Values[T any](g Generator[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v, err := range Sequence(g) {
			if err != nil || !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}
