package safecast

import (
	"math"
	"testing"
)

func FuzzToInt(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(math.MinInt64))
	f.Add(int64(math.MaxInt64))
	f.Fuzz(func(t *testing.T, from int64) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("panic: %v", r)
			}
		}()
		_ = ToInt(from)
	})
}

func FuzzToUint64(f *testing.F) {
	f.Add(0.0)
	f.Add(-1.5)
	f.Add(math.MaxFloat64)
	f.Fuzz(func(t *testing.T, from float64) {
		if from < 0 && ToUint64(from) != 0 {
			t.Fatalf("negative value %v did not saturate to 0", from)
		}
	})
}
