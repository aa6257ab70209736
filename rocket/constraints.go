package rocket

// Constraints are the hard limits a candidate must satisfy to count as a
// viable rocket. Zero values disable the optional checks; the mass and TWR
// limits are always enforced.
type Constraints struct {
	// MaxLaunchMass rejects rockets at or above this pad mass, in tonnes.
	MaxLaunchMass float64

	// MinTWR rejects rockets whose bottom stage cannot pull away from the
	// pad briskly enough. Thrust-to-weight must exceed this value.
	MinTWR float64

	// MinSecondStageTWR, when positive, requires the second stage's
	// thrust-to-weight to exceed this value. Single-stage rockets pass.
	MinSecondStageTWR float64

	// RequirePod requires a command pod in the final stage.
	RequirePod bool

	// RequireParachute requires a parachute in the final stage.
	RequireParachute bool
}

// DefaultConstraints returns the limits for a crewed suborbital hop off the
// stock launch pad.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxLaunchMass: 18.0,
		MinTWR:        2.0,
	}
}

// Check reports whether an evaluated rocket satisfies the constraints.
func (c Constraints) Check(r *EvaluationResult) bool {
	if r.LaunchMass >= c.MaxLaunchMass {
		return false
	}
	if r.OverallTWR <= c.MinTWR {
		return false
	}
	if c.MinSecondStageTWR > 0 && len(r.Stages) > 1 && r.SecondStageTWR <= c.MinSecondStageTWR {
		return false
	}
	final := r.FinalStage()
	if c.RequirePod && !ContainsCategory(final.Parts, CategoryPod) {
		return false
	}
	if c.RequireParachute && !ContainsCategory(final.Parts, CategoryParachute) {
		return false
	}
	return true
}
