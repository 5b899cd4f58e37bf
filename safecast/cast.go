package safecast

import "math"

// ToInt attempts to convert any [IConvertable] value to an int.
// If the conversion results in a value outside the range of an int,
// the closest boundary value will be returned.
func ToInt[C IConvertable](i C) int {
	if lessThanLowerBoundary(i, math.MinInt) {
		return math.MinInt
	}
	if greaterThanUpperBoundary(i, math.MaxInt) {
		return math.MaxInt
	}
	return int(i)
}

// ToInt64 attempts to convert any [IConvertable] value to an int64.
// If the conversion results in a value outside the range of an int64,
// the closest boundary value will be returned.
func ToInt64[C IConvertable](i C) int64 {
	if lessThanLowerBoundary(i, math.MinInt64) {
		return math.MinInt64
	}
	if greaterThanUpperBoundary(i, math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(i)
}

// ToUint64 attempts to convert any [IConvertable] value to an uint64.
// Negative values saturate to 0.
func ToUint64[C IConvertable](i C) uint64 {
	if lessThanLowerBoundary(i, uint64(0)) {
		return 0
	}
	if greaterThanUpperBoundary(i, uint64(math.MaxUint64)) {
		return math.MaxUint64
	}
	return uint64(i)
}
