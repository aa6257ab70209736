// Package testutil provides shared test fixtures for the rocket and search
// test packages: a known-good two-stage rocket with its closed-form flight
// figures, and a float comparison helper.
package testutil

import (
	"math"
	"testing"
)

// TwoStageNames is a 13-part, two-stage stack used across test packages,
// bottom of the stack first. The TD-12 closes the bottom stage.
var TwoStageNames = []string{
	"RT-5",
	"LV-T30",
	"FL-T400",
	"FL-T400",
	"TD-12",
	"LV-T30",
	"FL-T400",
	"FL-T400",
	"FL-T400",
	"FL-T200",
	"FL-T100",
	"Mk1 Command Pod",
	"Mk16 Parachute",
}

// Closed-form figures for TwoStageNames, computed by hand from the stock
// catalog: masses in tonnes, delta-v in m/s.
const (
	TwoStagePartCount  = 13
	TwoStageStageCount = 2

	TwoStageLaunchMass = 17.9175
	TwoStageDeltaV     = 4515.9
	TwoStageTWR        = 2.0948
	TwoStageSecondTWR  = 1.9685

	TwoStageBottomPartMass = 2.24
	TwoStageBottomFuelMass = 5.05
	TwoStageBottomDeltaV   = 797.2

	TwoStageTopPartMass = 3.1275
	TwoStageTopFuelMass = 7.5
	TwoStageTopWetMass  = 10.6275
	TwoStageTopDeltaV   = 3718.6
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
