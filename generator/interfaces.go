/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package generator provides generators: callables returning a new value on every call and
// keeping track of some hidden state between calls.
//
// Each generator owns its state. Two generators created by two calls to a constructor never
// interfere with each other. Generators are not safe for concurrent use unless wrapped with
// Synchronised, Counter excepted.
package generator

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-closures/$GOPACKAGE Source

// Generator produces a new value every time Next is called.
type Generator[T any] interface {
	// Next returns the next value, updating the generator's state.
	Next() (T, error)
}

// Source is a source of uniformly distributed random numbers.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Uint64N returns a random number in [0,n). It panics if n == 0.
	Uint64N(n uint64) uint64
	// Uint64 returns a random number over the whole uint64 range.
	Uint64() uint64
}
