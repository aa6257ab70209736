package rocket

import (
	"fmt"
	"math"
)

// G0 is standard gravity in m/s². Used for weight, specific impulse and
// propellant flow conversions.
const G0 = 9.80665

// Evaluator computes the full flight profile of candidate part sequences
// against a fixed set of constraints. It holds no per-candidate state, so a
// single Evaluator is safe for concurrent use from multiple goroutines.
type Evaluator struct {
	constraints Constraints
	ascent      AscentModel
}

// NewEvaluator builds an Evaluator using the named ascent model. An empty
// model name selects AscentImpulse. Selecting AscentVertical requires the
// rocket/ascent package to be linked in.
func NewEvaluator(constraints Constraints, ascentModel string) (*Evaluator, error) {
	model, err := newAscentModel(ascentModel)
	if err != nil {
		return nil, err
	}
	return &Evaluator{constraints: constraints, ascent: model}, nil
}

// newAscentModel resolves an ascent model name to an implementation.
func newAscentModel(name string) (AscentModel, error) {
	if !ValidAscentModels[name] {
		return nil, fmt.Errorf("unknown ascent model %q", name)
	}
	switch name {
	case "", AscentImpulse:
		return ImpulseAscent{}, nil
	case AscentVertical:
		if NewVerticalAscentFunc == nil {
			return nil, fmt.Errorf("ascent model %q is not linked in (import rocket/ascent)", name)
		}
		return NewVerticalAscentFunc(), nil
	default:
		return nil, fmt.Errorf("unhandled ascent model %q", name)
	}
}

// Constraints returns the constraint set the Evaluator checks against.
func (e *Evaluator) Constraints() Constraints {
	return e.constraints
}

// Evaluate computes the staged flight profile of a part sequence. The
// sequence is read bottom of the stack first. Returns ErrEmptySequence for
// zero parts and ErrNoEngine when no stage contains a thrust source; any
// other sequence evaluates successfully, with PassesConstraints reporting
// viability. The input slice is copied, so the caller may reuse it.
func (e *Evaluator) Evaluate(parts []Part) (*EvaluationResult, error) {
	if len(parts) == 0 {
		return nil, ErrEmptySequence
	}
	if !HasThrust(parts) {
		return nil, ErrNoEngine
	}
	parts = append([]Part(nil), parts...)
	groups := SplitStages(parts)

	// Wet mass riding above each stage, bottom to top. The top stage
	// carries nothing.
	payloads := make([]float64, len(groups))
	for i := len(groups) - 2; i >= 0; i-- {
		payloads[i] = payloads[i+1] + TotalWetMass(groups[i+1])
	}

	stages := make([]Stage, len(groups))
	altitude, velocity := 0.0, 0.0
	for i, group := range groups {
		stage := newStage(group, payloads[i])
		altitude, velocity = e.ascent.BurnStage(&stage, payloads[i], altitude, velocity)
		stage.BurnoutAltitude = altitude
		stage.BurnoutVelocity = velocity
		stages[i] = stage
	}

	result := &EvaluationResult{
		Parts:          parts,
		Stages:         stages,
		LaunchMass:     stages[0].WetMass,
		OverallTWR:     stages[0].ThrustToWeight,
		SecondStageTWR: math.NaN(),
		PartCount:      len(parts),
	}
	for i := range stages {
		result.TotalDeltaV += stages[i].DeltaV
	}
	if len(stages) > 1 {
		result.SecondStageTWR = stages[1].ThrustToWeight
	}
	result.PassesConstraints = e.constraints.Check(result)
	return result, nil
}

// newStage computes a stage's static figures: masses, thrust-to-weight,
// ideal delta-v and burn time. Burnout conditions are filled in by the
// ascent model afterwards.
func newStage(parts []Part, payloadMass float64) Stage {
	stage := Stage{
		Parts:    parts,
		PartMass: TotalDryMass(parts),
		FuelMass: TotalFuelMass(parts),
	}
	stage.WetMass = stage.PartMass + stage.FuelMass + payloadMass

	// Sum thrust over the stage's motors and weight specific impulse by
	// vacuum thrust: a lone engine keeps its own ISP, mixed stacks get the
	// flow-accurate average.
	var thrustASL, thrustVac, ispWeighted float64
	for _, p := range parts {
		if !p.Thrusts() {
			continue
		}
		thrustASL += p.ThrustASL
		thrustVac += p.ThrustVac
		ispWeighted += p.ThrustVac * p.ISPVac
	}
	if stage.WetMass > 0 {
		stage.ThrustToWeight = thrustASL / (stage.WetMass * G0)
	}
	if thrustVac > 0 && stage.FuelMass > 0 {
		isp := ispWeighted / thrustVac
		stage.DeltaV = isp * G0 * math.Log(stage.WetMass/(stage.WetMass-stage.FuelMass))
		stage.BurnTime = stage.FuelMass / (thrustVac / (isp * G0))
	}
	return stage
}
