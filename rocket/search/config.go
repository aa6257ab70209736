package search

import (
	"fmt"
)

// DefaultStart is the part sequence mutation-driven searches climb from: a
// small two-stage rocket that already satisfies the default constraints.
var DefaultStart = []string{
	"RT-10",
	"TD-12",
	"LV-T45",
	"FL-T100",
	"Mk1 Command Pod",
	"Mk16 Parachute",
}

// Config groups the search driver's knobs. The zero value is not runnable;
// start from DefaultConfig.
type Config struct {
	// Seed keys every random draw of the run. Runs with equal seeds and
	// equal configuration sample identical candidate streams.
	Seed int64

	// Iterations is the trial budget across all workers.
	Iterations int64

	// Workers is the number of evaluation goroutines. With a single worker
	// the search is fully deterministic; more workers keep per-worker draws
	// deterministic but interleave improvements in completion order.
	Workers int

	// Strategy selects the candidate source: StrategyMutate,
	// StrategyRandom or StrategyExhaustive.
	Strategy string

	// MinParts and MaxParts bound candidate sequence lengths for the
	// random and exhaustive strategies.
	MinParts int
	MaxParts int

	// Start names the base sequence for the mutation strategy, bottom of
	// the stack first. Empty means DefaultStart.
	Start []string
}

// DefaultConfig returns the stock search setup: a mutation climb from
// DefaultStart with a ten-thousand-trial budget on one worker.
func DefaultConfig() Config {
	return Config{
		Seed:       42,
		Iterations: 10000,
		Workers:    1,
		Strategy:   StrategyMutate,
		MinParts:   1,
		MaxParts:   16,
		Start:      append([]string(nil), DefaultStart...),
	}
}

// Validate checks that all names and parameter ranges in the config are
// valid.
func (c Config) Validate() error {
	if !ValidStrategies[c.Strategy] {
		return fmt.Errorf("unknown search strategy %q", c.Strategy)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.MinParts < 1 {
		return fmt.Errorf("min-parts must be at least 1, got %d", c.MinParts)
	}
	if c.MaxParts < c.MinParts {
		return fmt.Errorf("max-parts must be at least min-parts, got %d < %d", c.MaxParts, c.MinParts)
	}
	return nil
}
