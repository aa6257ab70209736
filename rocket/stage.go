package rocket

// Stage is one contiguous group of parts that burns and is jettisoned
// together, bottom of the stack first. Mass figures are in tonnes, delta-v
// and velocity in m/s, altitude in meters, burn time in seconds.
type Stage struct {
	// Parts is the stage's slice of the full sequence, launch order
	// preserved. The closing decoupler, if any, is the last element.
	Parts []Part

	// PartMass is the stage's dry mass: structure, engines, emptied tanks
	// and casings.
	PartMass float64

	// FuelMass is the propellant carried by the stage's tanks and boosters.
	FuelMass float64

	// WetMass is the total mass accelerated during this stage's burn: the
	// stage's own wet mass plus every stage above it as dead weight. For the
	// bottom stage this equals the launch mass.
	WetMass float64

	// DeltaV is the ideal velocity change of the burn.
	DeltaV float64

	// ThrustToWeight is sea-level thrust over WetMass at standard gravity.
	ThrustToWeight float64

	// BurnTime is how long the propellant lasts at full throttle.
	BurnTime float64

	// BurnoutAltitude and BurnoutVelocity are the flight conditions when the
	// stage's propellant runs out, per the evaluator's ascent model.
	BurnoutAltitude float64
	BurnoutVelocity float64
}

// SplitStages cuts a part sequence into stages. A decoupler closes the
// current stage when the stage already contains a thrust-producing part;
// decouplers placed before any thrust source ride along as inert structure.
// The closing decoupler belongs to the stage below it (it is dropped with
// the spent stage). The remainder after the last cut forms the final stage.
func SplitStages(parts []Part) [][]Part {
	var stages [][]Part
	var current []Part
	for _, p := range parts {
		current = append(current, p)
		if p.Category == CategoryDecoupler && HasThrust(current) {
			stages = append(stages, current)
			current = nil
		}
	}
	if len(current) > 0 {
		stages = append(stages, current)
	}
	return stages
}
