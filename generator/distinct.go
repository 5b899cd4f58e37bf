/*
 * Copyright (C) 2020-2024 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package generator

import (
	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-closures/commonerrors"
	"github.com/ARM-software/golang-closures/idgen"
)

// DistinctRandom generates random integers within a range, never returning the same value twice in a row.
type DistinctRandom struct {
	id          string
	bounds      Range
	source      Source
	logger      logr.Logger
	previous    int
	hasPrevious bool
}

// NewDistinctRandom returns a generator of random values in r where each value differs from the one returned just before.
// The first value can be any value of r.
// A range holding a single value is accepted but every call to Next then fails with commonerrors.ErrUnsatisfiableConstraint.
func NewDistinctRandom(r Range, opts ...Option) (g *DistinctRandom, err error) {
	err = r.Validate()
	if err != nil {
		return
	}
	o := newOptions(opts...)
	id, err := idgen.GenerateUUID4()
	if err != nil {
		return
	}
	g = &DistinctRandom{
		id:     id,
		bounds: r,
		source: o.source,
		logger: o.logger.WithValues("generator", id),
	}
	g.logger.V(1).Info("created generator of distinct random values", "min", r.Min, "max", r.Max)
	return
}

// MakeGenerator is like NewDistinctRandom but returns the generator as a function.
func MakeGenerator(r Range, opts ...Option) (func() (int, error), error) {
	g, err := NewDistinctRandom(r, opts...)
	if err != nil {
		return nil, err
	}
	return ToFunc[int](g), nil
}

// Next returns a random value of the range, different from the last value returned.
func (g *DistinctRandom) Next() (value int, err error) {
	span := g.bounds.span()
	if span == 0 {
		err = commonerrors.Newf(commonerrors.ErrUnsatisfiableConstraint, "range %v holds a single value so two consecutive values cannot differ", g.bounds)
		g.logger.Error(err, "could not generate a value")
		return
	}
	var offset uint64
	if g.hasPrevious {
		// draw among the span values left once the previous one is excluded, then skip over it.
		offset = g.source.Uint64N(span)
		if offset >= g.bounds.offsetOf(g.previous) {
			offset++
		}
	} else {
		offset = drawOffset(g.source, span)
	}
	value = g.bounds.at(offset)
	g.previous = value
	g.hasPrevious = true
	return
}

// ID returns the identifier the generator logs with.
func (g *DistinctRandom) ID() string {
	return g.id
}

// Range returns the range values are drawn from.
func (g *DistinctRandom) Range() Range {
	return g.bounds
}
