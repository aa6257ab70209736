package ascent

import "gonum.org/v1/gonum/interp"

// Stock atmosphere table: altitude in meters against ambient pressure as a
// fraction of sea level. The atmosphere ends at 70 km.
var (
	atmosphereAltitudes = []float64{0, 2500, 5000, 7500, 10000, 15000, 20000, 25000, 30000, 40000, 50000, 60000, 70000}
	atmospherePressures = []float64{1.000, 0.681, 0.450, 0.287, 0.177, 0.066, 0.025, 0.010, 0.004, 0.001, 0.000, 0.000, 0.000}
)

// Atmosphere interpolates ambient pressure over altitude.
type Atmosphere struct {
	curve interp.PiecewiseLinear
}

// NewAtmosphere builds the stock pressure curve.
func NewAtmosphere() *Atmosphere {
	a := &Atmosphere{}
	if err := a.curve.Fit(atmosphereAltitudes, atmospherePressures); err != nil {
		// The table is static with strictly increasing altitudes.
		panic(err)
	}
	return a
}

// Pressure returns the pressure fraction at the given altitude in meters,
// clamped to the table's endpoints: 1.0 below sea level, 0.0 above 70 km.
func (a *Atmosphere) Pressure(altitude float64) float64 {
	return a.curve.Predict(altitude)
}
