package generator

import (
	"math/rand/v2"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-closures/logs/logrimp"
)

// seedStream is the second PCG word derived from a user seed.
const seedStream = 0x9e3779b97f4a7c15

type Options struct {
	logger logr.Logger
	source Source
}

type Option func(*Options) *Options

// WithLogger sets the logger generators report to. Nothing is logged by default.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) *Options {
		if o == nil {
			return o
		}
		o.logger = logger
		return o
	}
}

// WithSource sets the source of randomness. The package-level source of math/rand/v2 is used by default.
func WithSource(source Source) Option {
	return func(o *Options) *Options {
		if o == nil || source == nil {
			return o
		}
		o.source = source
		return o
	}
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// NewSeededSource returns a PCG source seeded with seed. Sources seeded identically produce the same values.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^seedStream)) //nolint:gosec // not used for security purposes
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		logger: logrimp.NewNoopLogger(),
		source: globalSource{},
	}
	for i := range opts {
		if opts[i] != nil {
			o = opts[i](o)
		}
	}
	return o
}

type globalSource struct{}

func (globalSource) Uint64N(n uint64) uint64 {
	return rand.Uint64N(n) //nolint:gosec // not used for security purposes
}

func (globalSource) Uint64() uint64 {
	return rand.Uint64() //nolint:gosec // not used for security purposes
}
