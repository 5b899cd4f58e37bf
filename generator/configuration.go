package generator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-closures/commonerrors"
	"github.com/ARM-software/golang-closures/config"
)

// Configuration describes a generator of distinct random values.
type Configuration struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
	// Seed makes the generator deterministic when not zero.
	Seed uint64 `mapstructure:"seed" json:"seed"`
}

// DefaultConfiguration draws values in [1, 3].
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Min: 1,
		Max: 3,
	}
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Max, validation.By(notLessThan(cfg.Min))),
	)
}

// Range returns the range of values described by the configuration.
func (cfg *Configuration) Range() Range {
	return NewRange(cfg.Min, cfg.Max)
}

// LoadConfiguration loads a configuration from environment variables prefixed with envVarPrefix
// (e.g. GEN_MIN, GEN_MAX, GEN_SEED for "gen") falling back to DefaultConfiguration.
func LoadConfiguration(envVarPrefix string) (cfg *Configuration, err error) {
	cfg = &Configuration{}
	err = config.Load(envVarPrefix, cfg, DefaultConfiguration())
	return
}

// NewDistinctRandomFromConfiguration creates a generator from a configuration.
// Options provided take precedence over the configuration.
func NewDistinctRandomFromConfiguration(cfg *Configuration, opts ...Option) (*DistinctRandom, error) {
	if cfg == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing generator configuration")
	}
	err := config.WrapValidationError(nil, cfg.Validate())
	if err != nil {
		return nil, err
	}
	if cfg.Seed != 0 {
		opts = append([]Option{WithSeed(cfg.Seed)}, opts...)
	}
	return NewDistinctRandom(cfg.Range(), opts...)
}
