package generator

import (
	"go.uber.org/atomic"
)

// Counter generates an arithmetic progression: start, start+step, start+2*step...
//
// Unlike other generators, a counter is safe for concurrent use: every call gets its own value.
type Counter struct {
	next  *atomic.Int64
	step  int64
	count *atomic.Int64
}

// NewCounter returns a counter starting at start and moving by step on every call.
func NewCounter(start, step int) *Counter {
	return &Counter{
		next:  atomic.NewInt64(int64(start)),
		step:  int64(step),
		count: atomic.NewInt64(0),
	}
}

// MakeCounter is like NewCounter but returns the counter as a function.
func MakeCounter(start, step int) func() int {
	c := NewCounter(start, step)
	return func() int {
		v, _ := c.Next()
		return v
	}
}

// Next returns the current value and moves on to the next one. It never fails.
func (c *Counter) Next() (int, error) {
	v := c.next.Add(c.step) - c.step
	c.count.Inc()
	return int(v), nil
}

// Count returns how many values were generated so far.
func (c *Counter) Count() int64 {
	return c.count.Load()
}
