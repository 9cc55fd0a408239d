package sym

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// besselKPoints is the number of Gauss-Legendre nodes used to
	// integrate the Bessel K integrand
	besselKPoints = 256

	// besselKCutoff is the exponent below which the integrand is
	// treated as zero
	besselKCutoff = 60.0
)

// BesselKValue numerically computes Kᵥ(x), the modified Bessel function
// of the second kind, for x > 0 using the integral representation
//
//		Kᵥ(x) = ∫₀^∞ exp(-x cosh t) cosh(νt) dt
//
// BesselKValue returns +Inf at x = 0 and NaN for x < 0.
func BesselKValue(nu, x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsNaN(nu) || x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(1)
	}
	nu = math.Abs(nu)

	// The integrand is exp(nu*t - x*cosh t) up to a factor in [1/2, 1],
	// so integrate until that exponent is negligible.
	upper := 1.0
	for x*math.Cosh(upper)-nu*upper < besselKCutoff && upper < 100 {
		upper += 0.5
	}

	f := func(t float64) float64 {
		c := -x * math.Cosh(t)
		return 0.5 * (math.Exp(c+nu*t) + math.Exp(c-nu*t))
	}
	return quad.Fixed(f, 0, upper, besselKPoints, nil, 0)
}
