package rocket

import (
	"fmt"
	"io"
	"strings"
)

// report.go renders evaluation results into the fixed-width console report.
// fmt writes here are the program's output contract; diagnostics go through
// logrus elsewhere.

// WriteImprovement prints the two-line announcement for a new best rocket:
// the iteration it was found at, its part list, and its headline figures.
// The second-stage TWR column appears only for multi-stage rockets.
func WriteImprovement(w io.Writer, iteration int64, r *EvaluationResult) {
	fmt.Fprintf(w, "i=%d, NEW STAGE: %s\n", iteration, strings.Join(PartNames(r.Parts), ", "))
	fmt.Fprintf(w, "DELTA-V: %dm/s | TWR: %.4f", int(r.TotalDeltaV), r.OverallTWR)
	if len(r.Stages) > 1 {
		fmt.Fprintf(w, " | TWR (2. STAGE): %.4f", r.SecondStageTWR)
	}
	fmt.Fprintf(w, "\n\n")
}

// WriteReport prints every stage summary in burn order followed by the
// rocket summary.
func WriteReport(w io.Writer, r *EvaluationResult) {
	for i := range r.Stages {
		writeStageSummary(w, i, &r.Stages[i])
	}
	writeRocketSummary(w, r)
}

// WriteFinal prints the full report plus the closing delta-v line. The
// search driver calls this once, for the best rocket found.
func WriteFinal(w io.Writer, r *EvaluationResult) {
	WriteReport(w, r)
	fmt.Fprintf(w, "FINAL DELTA-V: %dm/s\n", int(r.TotalDeltaV))
}

// writeStageSummary prints one stage block. Velocity and delta-v truncate
// to whole m/s, altitude to whole kilometers; masses keep two decimals.
func writeStageSummary(w io.Writer, index int, stage *Stage) {
	fmt.Fprintf(w, "=========== STAGE %d ==========\n", index)
	fmt.Fprintf(w, "        PART MASS: %.2ft\n", stage.PartMass)
	fmt.Fprintf(w, "        FUEL MASS: %.2ft\n", stage.FuelMass)
	fmt.Fprintf(w, "         WET MASS: %.2ft\n", stage.WetMass)
	fmt.Fprintf(w, "          DELTA-V: %dm/s\n", int(stage.DeltaV))
	fmt.Fprintf(w, " THRUST TO WEIGHT: %.2f\n", stage.ThrustToWeight)
	fmt.Fprintf(w, " BURNOUT ALTITUDE: %dkm\n", int(stage.BurnoutAltitude/1000.0))
	fmt.Fprintf(w, " BURNOUT VELOCITY: %dm/s\n", int(stage.BurnoutVelocity))
	fmt.Fprintln(w)
}

// writeRocketSummary prints the whole-rocket block.
func writeRocketSummary(w io.Writer, r *EvaluationResult) {
	fmt.Fprintln(w, "============ ROCKET ============")
	fmt.Fprintf(w, "      LAUNCH MASS: %.2ft\n", r.LaunchMass)
	fmt.Fprintf(w, "          DELTA-V: %dm/s\n", int(r.TotalDeltaV))
	fmt.Fprintf(w, "       PART COUNT: %d\n", r.PartCount)
	fmt.Fprintln(w)
}
