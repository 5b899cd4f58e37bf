package generator

import (
	"fmt"
	"math"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-closures/commonerrors"
	"github.com/ARM-software/golang-closures/commonerrors/errortest"
	"github.com/ARM-software/golang-closures/config"
	"github.com/ARM-software/golang-closures/idgen"
	"github.com/ARM-software/golang-closures/logs/logstest"
)

// scriptedSource returns pre-defined values and records the bounds it was asked for.
type scriptedSource struct {
	values []uint64
	bounds []uint64
}

func (s *scriptedSource) pop() uint64 {
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

func (s *scriptedSource) Uint64N(n uint64) uint64 {
	s.bounds = append(s.bounds, n)
	return s.pop() % n
}

func (s *scriptedSource) Uint64() uint64 {
	s.bounds = append(s.bounds, 0)
	return s.pop()
}

func TestDistinctRandom_NoConsecutiveRepeats(t *testing.T) {
	tests := []Range{
		NewRange(1, 3),
		NewRange(0, 1),
		NewRange(-5, 5),
		NewRange(math.MaxInt-2, math.MaxInt),
		NewRange(math.MinInt, math.MaxInt),
	}
	for i := range tests {
		r := tests[i]
		t.Run(r.String(), func(t *testing.T) {
			g, err := NewDistinctRandom(r, WithLogger(logstest.NewTestLogger(t)))
			require.NoError(t, err)
			previous, err := g.Next()
			require.NoError(t, err)
			assert.True(t, r.Contains(previous))
			for j := 0; j < 1000; j++ {
				current, err := g.Next()
				require.NoError(t, err)
				assert.True(t, r.Contains(current))
				require.NotEqual(t, previous, current)
				previous = current
			}
		})
	}
}

func TestDistinctRandom_CoversRange(t *testing.T) {
	g, err := NewDistinctRandom(NewRange(1, 3))
	require.NoError(t, err)
	seen := mapset.NewSet[int]()
	for i := 0; i < 300; i++ {
		v, err := g.Next()
		require.NoError(t, err)
		seen.Add(v)
	}
	assert.True(t, seen.Equal(mapset.NewSet(1, 2, 3)))
}

func TestDistinctRandom_SingleValueRange(t *testing.T) {
	value := int(faker.RandomUnixTime()) % 100
	g, err := NewDistinctRandom(NewRange(value, value), WithLogger(logstest.NewTestLogger(t)))
	require.NoError(t, err)
	_, err = g.Next()
	errortest.AssertError(t, err, commonerrors.ErrUnsatisfiableConstraint)
	errortest.AssertErrorDescription(t, err, fmt.Sprintf("[%v, %v]", value, value))
	_, err = g.Next()
	errortest.AssertError(t, err, commonerrors.ErrUnsatisfiableConstraint)

	next, err := MakeGenerator(NewRange(value, value))
	require.NoError(t, err)
	_, err = next()
	errortest.AssertError(t, err, commonerrors.ErrUnsatisfiableConstraint)
}

func TestDistinctRandom_InvertedRange(t *testing.T) {
	_, err := NewDistinctRandom(NewRange(3, 1))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	next, err := MakeGenerator(NewRange(3, 1))
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Nil(t, next)
}

func TestDistinctRandom_SkipsPreviousValue(t *testing.T) {
	source := &scriptedSource{values: []uint64{0, 0, 1, 1, 0}}
	g, err := NewDistinctRandom(NewRange(1, 3), WithSource(source))
	require.NoError(t, err)
	values, err := Take[int](g, 5)
	require.NoError(t, err)
	// 1 is drawn first then only two values are admissible each time.
	assert.Equal(t, []int{1, 2, 3, 2, 1}, values)
	assert.Equal(t, []uint64{3, 2, 2, 2, 2}, source.bounds)
}

func TestDistinctRandom_WholeIntRange(t *testing.T) {
	source := &scriptedSource{values: []uint64{0, 0, math.MaxUint64 - 1}}
	g, err := NewDistinctRandom(NewRange(math.MinInt, math.MaxInt), WithSource(source))
	require.NoError(t, err)
	values, err := Take[int](g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{math.MinInt, math.MinInt + 1, math.MaxInt}, values)
	assert.Equal(t, []uint64{0, math.MaxUint64, math.MaxUint64}, source.bounds)
}

func TestDistinctRandom_Independence(t *testing.T) {
	seed := uint64(faker.RandomUnixTime())
	g1, err := NewDistinctRandom(NewRange(0, 9), WithSeed(seed))
	require.NoError(t, err)
	g2, err := NewDistinctRandom(NewRange(0, 9), WithSeed(seed))
	require.NoError(t, err)
	reference, err := NewDistinctRandom(NewRange(0, 9), WithSeed(seed))
	require.NoError(t, err)
	assert.NotEqual(t, g1.ID(), g2.ID())

	expected, err := Take[int](reference, 20)
	require.NoError(t, err)

	// Advancing g1 does not change what g2 produces.
	_, err = Take[int](g1, 7)
	require.NoError(t, err)
	actual, err := Take[int](g2, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestDistinctRandom_Accessors(t *testing.T) {
	r := NewRange(-1, 1)
	g, err := NewDistinctRandom(r)
	require.NoError(t, err)
	assert.Equal(t, r, g.Range())
	assert.True(t, idgen.IsValidUUID(g.ID()))
}

func TestRange(t *testing.T) {
	r := NewRange(-2, 2)
	require.NoError(t, r.Validate())
	assert.True(t, r.Contains(-2))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(3))
	assert.False(t, r.IsSingleValue())
	assert.True(t, NewRange(4, 4).IsSingleValue())
	assert.Equal(t, "[-2, 2]", r.String())
	assert.Equal(t, uint64(4), r.span())
	assert.Equal(t, uint64(math.MaxUint64), NewRange(math.MinInt, math.MaxInt).span())
	for v := -2; v <= 2; v++ {
		assert.Equal(t, v, r.at(r.offsetOf(v)))
	}
	errortest.AssertError(t, NewRange(1, 0).Validate(), commonerrors.ErrInvalid)
}

func TestRange_Inverted(t *testing.T) {
	tests := []Range{
		NewRange(5, 0),
		NewRange(1, 0),
		NewRange(0, -1),
		NewRange(math.MaxInt, math.MinInt),
	}
	for i := range tests {
		r := tests[i]
		t.Run(r.String(), func(t *testing.T) {
			err := r.Validate()
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
			var vErr config.IValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, "max", vErr.GetTreePath())

			g, err := NewDistinctRandom(r)
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
			assert.Nil(t, g)
		})
	}
	require.NoError(t, NewRange(0, 0).Validate())
	require.NoError(t, NewRange(-3, 0).Validate())
}
