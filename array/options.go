package array

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	defaultMin = 0.0
	defaultMax = 100.0
)

var (
	// ErrNegativeSize is returned by New for a negative requested size.
	ErrNegativeSize = errors.New("array: size must be >= 0")
	// ErrInvalidRange is returned for a degenerate or non-finite value range.
	ErrInvalidRange = errors.New("array: invalid value range")
)

type config struct {
	min float64
	max float64
	rng *rand.Rand
}

func defaultConfig() config {
	return config{
		min: defaultMin,
		max: defaultMax,
	}
}

// Option configures the construction of an [Array].
type Option func(*config) error

// WithSeed sets a deterministic seed for the random fill.
func WithSeed(seed uint64) Option {
	return func(cfg *config) error {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
		return nil
	}
}

// WithRNG sets the random source used for the fill. Overrides WithSeed.
func WithRNG(rng *rand.Rand) Option {
	return func(cfg *config) error {
		if rng == nil {
			return errors.New("array: rng must not be nil")
		}
		cfg.rng = rng
		return nil
	}
}

// WithRange sets the half-open value range [min, max) for the random
// fill (default [0, 100)). Both bounds must be finite and min < max.
func WithRange(min, max float64) Option {
	return func(cfg *config) error {
		if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
			return fmt.Errorf("%w: bounds must be finite: [%f, %f)", ErrInvalidRange, min, max)
		}
		if min >= max {
			return fmt.Errorf("%w: min must be < max: [%f, %f)", ErrInvalidRange, min, max)
		}

		cfg.min = min
		cfg.max = max

		return nil
	}
}

func applyOptions(opts ...Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	if cfg.rng == nil {
		// Time-seeded process-wide source, as in the original runtime.
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return cfg, nil
}
