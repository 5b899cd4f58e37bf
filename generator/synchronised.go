package generator

import (
	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-closures/commonerrors"
)

type synchronised[T any] struct {
	mu        deadlock.Mutex
	generator Generator[T]
}

func (s *synchronised[T]) Next() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.Next()
}

// Synchronised returns a generator which can be shared between goroutines.
// Calls to the underlying generator are serialised.
func Synchronised[T any](g Generator[T]) (Generator[T], error) {
	if g == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing generator")
	}
	return &synchronised[T]{generator: g}, nil
}
