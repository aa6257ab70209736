package rocket

// EvaluationResult is the full flight profile of one candidate rocket.
// Created fresh per candidate by Evaluator.Evaluate and never mutated
// afterwards, so the search driver can retain and print it while workers
// keep evaluating.
type EvaluationResult struct {
	// Parts is the evaluated sequence, bottom of the stack first.
	Parts []Part

	// Stages holds the per-stage figures in burn order.
	Stages []Stage

	// LaunchMass is the pad mass in tonnes: the bottom stage's WetMass.
	LaunchMass float64

	// TotalDeltaV is the sum of all stage delta-v, in m/s.
	TotalDeltaV float64

	// OverallTWR is the bottom stage's thrust-to-weight ratio.
	OverallTWR float64

	// SecondStageTWR is the thrust-to-weight ratio of the stage above the
	// bottom one. NaN when the rocket has a single stage; check the stage
	// count before reading it.
	SecondStageTWR float64

	// PartCount is the number of parts across all stages.
	PartCount int

	// PassesConstraints reports whether the rocket satisfied the
	// Evaluator's constraint set.
	PassesConstraints bool
}

// FinalStage returns the topmost stage, the last to burn. Evaluate always
// produces at least one stage.
func (r *EvaluationResult) FinalStage() *Stage {
	return &r.Stages[len(r.Stages)-1]
}
