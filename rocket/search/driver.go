package search

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/rocket-sim/rocket-sim/rocket"
)

// ErrNoViableCandidate is returned by Search when no evaluated candidate
// ever satisfied the constraints.
var ErrNoViableCandidate = errors.New("no candidate satisfied constraints")

// Driver runs the candidate loop: pull a sequence from the source, evaluate
// it, and keep the best passing rocket seen so far. Evaluation is
// embarrassingly parallel; the only shared mutable state is the current
// best, updated under a single mutex, and the source, serialized under its
// own lock.
type Driver struct {
	cfg    Config
	eval   *rocket.Evaluator
	source CandidateSource
	out    io.Writer

	// mu guards best and bestIteration. Improvement reports are written
	// while holding it so concurrent improvements cannot interleave lines.
	mu            sync.Mutex
	best          *rocket.EvaluationResult
	bestIteration int64

	// srcMu serializes source access: Next draws and Accept re-roots.
	srcMu sync.Mutex

	evaluated atomic.Int64
	invalid   atomic.Int64
	improved  atomic.Int64
}

// NewDriver validates the config and builds a Driver. Reports go to out;
// nil means os.Stdout.
func NewDriver(cfg Config, eval *rocket.Evaluator, source CandidateSource, out io.Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}
	return &Driver{cfg: cfg, eval: eval, source: source, out: out}, nil
}

// Search runs up to cfg.Iterations trials across cfg.Workers goroutines and
// returns the best passing rocket, printing the final report for it.
// Workers stop early when the source exhausts or ctx is cancelled; a
// cancelled search still returns the best found so far. Returns
// ErrNoViableCandidate if nothing ever passed.
func (d *Driver) Search(ctx context.Context) (*rocket.EvaluationResult, error) {
	prng := rocket.NewPartitionedRNG(rocket.NewSearchKey(d.cfg.Seed))

	var trials atomic.Int64
	var exhausted atomic.Bool
	var wg sync.WaitGroup
	for w := 0; w < d.cfg.Workers; w++ {
		// Subsystem streams must be derived here: PartitionedRNG is not
		// goroutine-safe.
		rng := prng.ForSubsystem(rocket.SubsystemWorker(w))
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()
			d.runWorker(ctx, rng, &trials, &exhausted)
		}(rng)
	}
	wg.Wait()

	logrus.Infof("search finished: evaluated=%d invalid=%d improvements=%d",
		d.evaluated.Load(), d.invalid.Load(), d.improved.Load())

	d.mu.Lock()
	best := d.best
	d.mu.Unlock()
	if best == nil {
		return nil, ErrNoViableCandidate
	}
	rocket.WriteFinal(d.out, best)
	return best, nil
}

// Best returns the best passing rocket seen so far and the trial it was
// found at, or nil if nothing has passed yet. Safe to call while Search is
// running.
func (d *Driver) Best() (*rocket.EvaluationResult, int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.best, d.bestIteration
}

// Evaluated returns the number of trials evaluated so far.
func (d *Driver) Evaluated() int64 {
	return d.evaluated.Load()
}

// runWorker pulls and evaluates candidates until the trial budget is spent,
// the source exhausts, or ctx is cancelled. Cancellation is cooperative and
// checked between trials; a single trial is cheap and bounded.
func (d *Driver) runWorker(ctx context.Context, rng *rand.Rand, trials *atomic.Int64, exhausted *atomic.Bool) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if exhausted.Load() {
			return
		}
		n := trials.Add(1)
		if n > d.cfg.Iterations {
			return
		}

		d.srcMu.Lock()
		parts := d.source.Next(rng)
		d.srcMu.Unlock()
		if parts == nil {
			exhausted.Store(true)
			return
		}
		d.trial(n-1, parts)
	}
}

// trial evaluates one candidate and installs it as the new best when it
// passes the constraints and strictly beats the incumbent's delta-v. Equal
// scores keep the earlier find.
func (d *Driver) trial(iteration int64, parts []rocket.Part) {
	d.evaluated.Add(1)
	result, err := d.eval.Evaluate(parts)
	if err != nil {
		d.invalid.Add(1)
		logrus.Debugf("trial %d rejected: %v", iteration, err)
		return
	}
	if !result.PassesConstraints {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.best != nil && result.TotalDeltaV <= d.best.TotalDeltaV {
		return
	}
	d.best = result
	d.bestIteration = iteration
	d.improved.Add(1)
	rocket.WriteImprovement(d.out, iteration, result)

	if adaptive, ok := d.source.(AdaptiveSource); ok {
		d.srcMu.Lock()
		adaptive.Accept(result.Parts)
		d.srcMu.Unlock()
	}
}
