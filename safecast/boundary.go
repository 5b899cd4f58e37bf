package safecast

// greaterThanUpperBoundary reports whether value does not fit below upperBoundary.
func greaterThanUpperBoundary[C1 IConvertable, C2 IConvertable](value C1, upperBoundary C2) (greater bool) {
	if value <= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		greater = f >= float64(upperBoundary)
	case float32:
		greater = float64(f) >= float64(upperBoundary)
	default:
		// positive integers always fit in an uint64
		greater = uint64(value) > uint64(upperBoundary)
	}
	return
}

// lessThanLowerBoundary reports whether value does not fit above boundary.
func lessThanLowerBoundary[T IConvertable, T2 IConvertable](value T, boundary T2) (lower bool) {
	if value >= 0 {
		return
	}

	switch f := any(value).(type) {
	case float64:
		lower = f <= float64(boundary)
	case float32:
		lower = float64(f) <= float64(boundary)
	default:
		lower = int64(value) < int64(boundary)
	}
	return
}
