package rocket

// AscentModel estimates the flight conditions reached by one stage's burn.
// The evaluator threads altitude and velocity through the stages bottom to
// top, so a model only ever sees one burn at a time.
type AscentModel interface {
	// BurnStage advances the trajectory through the given stage's burn.
	// The stage carries the masses, thrust figures and burn time already
	// computed by the evaluator; payloadMass is the wet mass riding above
	// the stage; altitude (m) and velocity (m/s) are the conditions at
	// ignition. Returns altitude and velocity at burnout.
	BurnStage(stage *Stage, payloadMass, altitude, velocity float64) (float64, float64)
}

// Ascent model names accepted by NewEvaluator.
const (
	// AscentImpulse is the closed-form default model.
	AscentImpulse = "impulse"

	// AscentVertical numerically integrates a straight-up burn through the
	// atmosphere. Implemented in the rocket/ascent sub-package.
	AscentVertical = "vertical"
)

// ValidAscentModels is the set of recognized ascent model names, consulted
// by NewEvaluator. The empty name selects the impulse default.
var ValidAscentModels = map[string]bool{"": true, AscentImpulse: true, AscentVertical: true}

// NewVerticalAscentFunc constructs the "vertical" ascent model. It is set by
// the rocket/ascent package's init(); the indirection breaks the import
// cycle between rocket (interface owner) and rocket/ascent (implementation),
// and keeps the numerical integrator out of this package's dependencies.
// Production code imports rocket/ascent directly; selecting "vertical"
// without that import is a configuration error.
var NewVerticalAscentFunc func() AscentModel

// ImpulseAscent treats each burn as constant acceleration over the stage's
// burn time against standard gravity, with no atmosphere. Altitude gain is
// the mean of ignition and burnout velocity times the burn time, minus
// gravity losses, floored at zero.
type ImpulseAscent struct{}

// BurnStage implements AscentModel.
func (ImpulseAscent) BurnStage(stage *Stage, _, altitude, velocity float64) (float64, float64) {
	burnout := velocity + stage.DeltaV
	t := stage.BurnTime
	gain := (velocity+burnout)/2*t - 0.5*G0*t*t
	if gain < 0 {
		gain = 0
	}
	return altitude + gain, burnout
}
