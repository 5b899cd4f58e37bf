package generator

import (
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-closures/config"
)

// Range is a closed interval of integers [Min, Max].
type Range struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
}

// NewRange returns the closed range [lower, upper].
func NewRange(lower, upper int) Range {
	return Range{Min: lower, Max: upper}
}

// Validate checks the range is not inverted.
func (r Range) Validate() error {
	return config.WrapValidationError(nil, validation.ValidateStruct(&r,
		validation.Field(&r.Max, validation.By(notLessThan(r.Min))),
	))
}

// notLessThan checks an int is at least lower. Unlike validation.Min, zero values are checked too.
func notLessThan(lower int) validation.RuleFunc {
	return func(value any) error {
		v, ok := value.(int)
		if !ok {
			return validation.NewError("validation_not_an_int", fmt.Sprintf("must be an integer but got %T", value))
		}
		if v < lower {
			return validation.NewError("validation_range_inverted", fmt.Sprintf("must be no less than %v", lower))
		}
		return nil
	}
}

// Contains states whether v belongs to the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// IsSingleValue states whether the range only holds one value.
func (r Range) IsSingleValue() bool {
	return r.Min == r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}

// span returns Max-Min which is the number of values in the range minus one.
// Unsigned arithmetic keeps it exact even for [math.MinInt, math.MaxInt].
func (r Range) span() uint64 {
	return uint64(r.Max) - uint64(r.Min) //nolint:gosec // wrap-around is intended
}

// at returns the value at offset from Min.
func (r Range) at(offset uint64) int {
	return int(uint64(r.Min) + offset) //nolint:gosec // wrap-around is intended
}

// offsetOf is the inverse of at.
func (r Range) offsetOf(v int) uint64 {
	return uint64(v) - uint64(r.Min) //nolint:gosec // wrap-around is intended
}

// drawOffset returns a uniformly distributed offset in [0, span].
func drawOffset(source Source, span uint64) uint64 {
	if span == math.MaxUint64 {
		return source.Uint64()
	}
	return source.Uint64N(span + 1)
}
