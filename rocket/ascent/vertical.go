// Package ascent integrates stage burns as straight-up flight through the
// stock atmosphere. Thrust blends between sea-level and vacuum ratings with
// ambient pressure, propellant depletes per motor, and gravity is charged
// against velocity the whole way. Drag is not modeled.
package ascent

import (
	"math"
	"sort"

	"github.com/rocket-sim/rocket-sim/rocket"
)

// Error tolerances for the burn integration: tight absolute floors with
// relative control at 1e-4.
var burnATol = []float64{1e-9, 1e-9}

const burnRTol = 1e-4

// Segment endpoints back off the thrust discontinuity at each motor
// burnout by a small pad.
const (
	segmentStartPad = 1e-6
	segmentEndPad   = 1e-3
)

// motor is one thrust source's burn bookkeeping. Solid boosters burn their
// own casing propellant; all liquid engines in a stage merge into a single
// motor fed by the pooled tank fuel.
type motor struct {
	fuel      float64 // propellant budget, t
	thrustASL float64 // kN
	thrustVac float64 // kN
	massFlow  float64 // t/s
}

// VerticalAscent is the numerical ascent model. It implements
// rocket.AscentModel; rocket.AscentVertical selects it once this package is
// linked in.
type VerticalAscent struct {
	atmosphere *Atmosphere
}

// NewVerticalAscent builds the model with the stock atmosphere.
func NewVerticalAscent() *VerticalAscent {
	return &VerticalAscent{atmosphere: NewAtmosphere()}
}

// BurnStage integrates the stage's burn from ignition to the last motor
// burnout and returns the altitude and velocity there. The integration is
// split at each motor's depletion time so the step controller never
// straddles a thrust discontinuity. Stages with no propellant flow return
// the ignition conditions unchanged.
func (m *VerticalAscent) BurnStage(stage *rocket.Stage, payloadMass, altitude, velocity float64) (float64, float64) {
	motors := stageMotors(stage.Parts)
	times := burnoutTimes(motors)
	if len(times) == 0 {
		return altitude, velocity
	}

	f := m.dynamics(motors, stage.WetMass)
	y := []float64{velocity, altitude}
	prev := 0.0
	for _, t := range times {
		y = rk45(f, y, prev+segmentStartPad, t-segmentEndPad, burnATol, burnRTol)
		prev = t
	}
	return y[1], y[0]
}

// dynamics returns the derivative of [velocity, altitude] at burn time t.
// Motors thrust until their propellant budget runs out; consumed propellant
// comes off the wet mass, capped at each motor's budget.
func (m *VerticalAscent) dynamics(motors []motor, wetMass float64) derivFunc {
	return func(t float64, y []float64) []float64 {
		v, altitude := y[0], y[1]
		pressure := m.atmosphere.Pressure(altitude)

		var thrust float64
		mass := wetMass
		for i := range motors {
			mo := &motors[i]
			burned := mo.massFlow * t
			if mo.fuel > burned {
				thrust += mo.thrustASL*pressure + mo.thrustVac*(1.0-pressure)
			}
			mass -= math.Min(mo.fuel, burned)
		}
		return []float64{thrust/mass - rocket.G0, v}
	}
}

// stageMotors groups a stage's thrust sources. Classification follows the
// part's shape rather than its category label: a thrusting part carrying
// its own propellant is a solid motor, a thrusting part without propellant
// is a liquid engine drawing from the stage's tanks.
func stageMotors(parts []rocket.Part) []motor {
	var motors []motor
	var liquid motor
	var tankFuel float64
	for _, p := range parts {
		switch {
		case p.Thrusts() && p.FuelMass > 0:
			motors = append(motors, motor{
				fuel:      p.FuelMass,
				thrustASL: p.ThrustASL,
				thrustVac: p.ThrustVac,
				massFlow:  p.ThrustVac / (p.ISPVac * rocket.G0),
			})
		case p.Thrusts():
			liquid.thrustASL += p.ThrustASL
			liquid.thrustVac += p.ThrustVac
			liquid.massFlow += p.ThrustVac / (p.ISPVac * rocket.G0)
		case p.FuelMass > 0:
			tankFuel += p.FuelMass
		}
	}
	if liquid.massFlow > 0 {
		liquid.fuel = tankFuel
		motors = append(motors, liquid)
	}
	return motors
}

// burnoutTimes returns each motor's depletion time, sorted ascending.
// Motors with no propellant or no flow never ignite and contribute nothing.
func burnoutTimes(motors []motor) []float64 {
	times := make([]float64, 0, len(motors))
	for _, m := range motors {
		if m.fuel > 1e-6 && m.massFlow > 1e-6 {
			times = append(times, m.fuel/m.massFlow)
		}
	}
	sort.Float64s(times)
	return times
}
