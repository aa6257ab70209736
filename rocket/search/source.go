package search

import (
	"fmt"
	"math/rand"

	"github.com/rocket-sim/rocket-sim/rocket"
)

// Search strategy names accepted by NewCandidateSource.
const (
	// StrategyMutate hill-climbs by randomly editing the current best
	// sequence.
	StrategyMutate = "mutate"

	// StrategyRandom draws independent uniform sequences.
	StrategyRandom = "random"

	// StrategyExhaustive enumerates every sequence up to MaxParts in
	// catalog order.
	StrategyExhaustive = "exhaustive"
)

// ValidStrategies is the set of recognized search strategy names. Shared by
// Config.Validate and NewCandidateSource.
var ValidStrategies = map[string]bool{
	StrategyMutate:     true,
	StrategyRandom:     true,
	StrategyExhaustive: true,
}

// CandidateSource yields part sequences for the driver to evaluate. Next
// returns nil once the source is exhausted; sampling sources never exhaust.
// Implementations need not be goroutine-safe — the driver serializes all
// source access under one lock.
type CandidateSource interface {
	Next(rng *rand.Rand) []rocket.Part
}

// AdaptiveSource is implemented by sources that refine future candidates
// from accepted improvements. The driver calls Accept each time a candidate
// becomes the new best.
type AdaptiveSource interface {
	CandidateSource
	Accept(parts []rocket.Part)
}

// NewCandidateSource builds the source for the configured strategy. The
// mutation strategy resolves cfg.Start against the catalog and fails on
// unknown part names.
func NewCandidateSource(strategy string, catalog *rocket.Catalog, cfg Config) (CandidateSource, error) {
	switch strategy {
	case StrategyMutate:
		names := cfg.Start
		if len(names) == 0 {
			names = DefaultStart
		}
		base, err := catalog.Parts(names...)
		if err != nil {
			return nil, fmt.Errorf("resolving start sequence: %w", err)
		}
		return NewMutationSampler(catalog, base), nil
	case StrategyRandom:
		return NewRandomSampler(catalog, cfg.MinParts, cfg.MaxParts), nil
	case StrategyExhaustive:
		return NewExhaustiveEnumerator(catalog, cfg.MaxParts), nil
	default:
		return nil, fmt.Errorf("unknown search strategy %q", strategy)
	}
}

// === RandomSampler ===

// RandomSampler draws sequences with uniform length in [minParts, maxParts]
// and uniform part choice per slot.
type RandomSampler struct {
	parts    []rocket.Part
	minParts int
	maxParts int
}

// NewRandomSampler builds a RandomSampler over the catalog's parts.
func NewRandomSampler(catalog *rocket.Catalog, minParts, maxParts int) *RandomSampler {
	return &RandomSampler{parts: catalog.List(), minParts: minParts, maxParts: maxParts}
}

// Next implements CandidateSource.
func (s *RandomSampler) Next(rng *rand.Rand) []rocket.Part {
	n := s.minParts
	if s.maxParts > s.minParts {
		n += rng.Intn(s.maxParts - s.minParts + 1)
	}
	seq := make([]rocket.Part, n)
	for i := range seq {
		seq[i] = s.parts[rng.Intn(len(s.parts))]
	}
	return seq
}

// === ExhaustiveEnumerator ===

// ExhaustiveEnumerator yields every part sequence of length 1 through
// maxParts in catalog order, shortest first, by counting an odometer over
// part indices. Fully deterministic; the rng argument is ignored.
type ExhaustiveEnumerator struct {
	parts    []rocket.Part
	maxParts int
	digits   []int
	done     bool
}

// NewExhaustiveEnumerator builds an enumerator over the catalog's parts.
func NewExhaustiveEnumerator(catalog *rocket.Catalog, maxParts int) *ExhaustiveEnumerator {
	return &ExhaustiveEnumerator{parts: catalog.List(), maxParts: maxParts}
}

// Next implements CandidateSource. Returns nil after the last sequence of
// length maxParts.
func (e *ExhaustiveEnumerator) Next(_ *rand.Rand) []rocket.Part {
	if e.done {
		return nil
	}
	if e.digits == nil {
		e.digits = make([]int, 1)
	} else {
		i := len(e.digits) - 1
		for i >= 0 {
			e.digits[i]++
			if e.digits[i] < len(e.parts) {
				break
			}
			e.digits[i] = 0
			i--
		}
		if i < 0 {
			// Odometer rolled over: move to the next sequence length.
			if len(e.digits) >= e.maxParts {
				e.done = true
				return nil
			}
			e.digits = make([]int, len(e.digits)+1)
		}
	}
	seq := make([]rocket.Part, len(e.digits))
	for i, d := range e.digits {
		seq[i] = e.parts[d]
	}
	return seq
}

// === MutationSampler ===

// Mutation weights: a draw in [0,1) above insertCutoff inserts a random
// part, above replaceCutoff replaces one, otherwise one is removed. After
// each edit the sampler stops with probability 1-stopCutoff, so most
// candidates differ from the base by a single edit.
const (
	insertCutoff  = 0.85
	replaceCutoff = 0.20
	stopCutoff    = 0.30
)

// MutationSampler hill-climbs: every candidate is the base sequence with
// one or more random edits, and Accept re-roots the climb at an improved
// sequence. The very first draw returns the base unchanged, so the climb is
// anchored by evaluating its own starting point. Edits that cannot apply to
// an empty sequence are skipped, so the sampler can emit empty candidates;
// the evaluator rejects those.
type MutationSampler struct {
	parts       []rocket.Part
	base        []rocket.Part
	emittedBase bool
}

// NewMutationSampler builds a MutationSampler climbing from base.
func NewMutationSampler(catalog *rocket.Catalog, base []rocket.Part) *MutationSampler {
	return &MutationSampler{
		parts: catalog.List(),
		base:  append([]rocket.Part(nil), base...),
	}
}

// Base returns the sequence the sampler is currently climbing from.
func (s *MutationSampler) Base() []rocket.Part {
	return append([]rocket.Part(nil), s.base...)
}

// Next implements CandidateSource.
func (s *MutationSampler) Next(rng *rand.Rand) []rocket.Part {
	// Never nil, even for an empty base: nil means exhausted to the driver.
	seq := append(make([]rocket.Part, 0, len(s.base)), s.base...)
	if !s.emittedBase {
		s.emittedBase = true
		return seq
	}
	for {
		switch r := rng.Float64(); {
		case r > insertCutoff:
			at := rng.Intn(len(seq) + 1)
			p := s.parts[rng.Intn(len(s.parts))]
			seq = append(seq, rocket.Part{})
			copy(seq[at+1:], seq[at:])
			seq[at] = p
		case r > replaceCutoff:
			if len(seq) > 0 {
				seq[rng.Intn(len(seq))] = s.parts[rng.Intn(len(s.parts))]
			}
		default:
			if len(seq) > 0 {
				at := rng.Intn(len(seq))
				seq = append(seq[:at], seq[at+1:]...)
			}
		}
		if rng.Float64() > stopCutoff {
			break
		}
	}
	return seq
}

// Accept implements AdaptiveSource: future candidates mutate the accepted
// sequence.
func (s *MutationSampler) Accept(parts []rocket.Part) {
	s.base = append(s.base[:0:0], parts...)
}
