package ascent

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// derivFunc evaluates the state derivative dy/dt at time t. Implementations
// must return a fresh slice; the integrator scales it in place.
type derivFunc func(t float64, y []float64) []float64

const (
	// epsilon is the float64 machine epsilon, used as an error floor so a
	// step with zero truncation error still yields a finite step-size update.
	epsilon = 2.220446049250313e-16

	// initialStep is the starting step size in seconds.
	initialStep = 10.0

	// maxSteps caps attempted steps per integration so a collapsed step
	// size cannot spin forever.
	maxSteps = 10000
)

// rk45 integrates y' = f(t, y) from t0 to tEnd with the Runge-Kutta-Fehlberg
// embedded 4(5) pair. Steps are accepted when the scaled error norm
//
//	sqrt(Σ ((|y5−y4| + ε) / (atol + rtol·|y5|))²)
//
// is at most one, and the step size is adapted by 0.84·norm^(−1/4) either
// way. Returns the state at tEnd.
func rk45(f derivFunc, y0 []float64, t0, tEnd float64, atol []float64, rtol float64) []float64 {
	y := append([]float64(nil), y0...)
	t := t0
	h := initialStep
	for steps := 0; t < tEnd && steps < maxSteps; steps++ {
		if t+h > tEnd {
			h = tEnd - t
		}

		// Six evaluations cover both embedded orders.
		k1 := scaled(h, f(t, y))
		k2 := scaled(h, f(t+h/4, combine(y, []float64{1.0 / 4}, k1)))
		k3 := scaled(h, f(t+h*3/8, combine(y, []float64{3.0 / 32, 9.0 / 32}, k1, k2)))
		k4 := scaled(h, f(t+h*12/13, combine(y, []float64{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197}, k1, k2, k3)))
		k5 := scaled(h, f(t+h, combine(y, []float64{439.0 / 216, -8.0, 3680.0 / 513, -845.0 / 4104}, k1, k2, k3, k4)))
		k6 := scaled(h, f(t+h/2, combine(y, []float64{-8.0 / 27, 2.0, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40}, k1, k2, k3, k4, k5)))

		// Fourth- and fifth-order solutions.
		y4 := combine(y, []float64{25.0 / 216, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5}, k1, k3, k4, k5)
		y5 := combine(y, []float64{16.0 / 135, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}, k1, k3, k4, k5, k6)

		var norm float64
		for i := range y4 {
			e := (math.Abs(y5[i]-y4[i]) + epsilon) / (atol[i] + rtol*math.Abs(y5[i]))
			norm += e * e
		}
		norm = math.Sqrt(norm)

		if norm <= 1.0 {
			t += h
			y = y4
		}
		h *= 0.84 * math.Pow(norm, -0.25)
	}
	return y
}

// scaled multiplies k by c in place and returns it.
func scaled(c float64, k []float64) []float64 {
	floats.Scale(c, k)
	return k
}

// combine returns y + Σ coeffs[i]·ks[i] as a fresh slice.
func combine(y []float64, coeffs []float64, ks ...[]float64) []float64 {
	out := append([]float64(nil), y...)
	for i, k := range ks {
		floats.AddScaled(out, coeffs[i], k)
	}
	return out
}
