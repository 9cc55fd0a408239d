package sym

import (
	"math"
	"math/big"
	"strings"
)

// maxExactGamma bounds the arguments gamma is evaluated exactly at
const maxExactGamma = 1000

// Func is an application of a named special function
type Func struct {
	name  string
	fargs []Expr
}

// Exp returns the exponential function applied to e
func Exp(e Expr) Expr {
	if hasNaN(e) {
		return NaN
	}
	if n, ok := e.(*Num); ok && n.IsZero() {
		return one
	}
	return &Func{name: "exp", fargs: []Expr{e}}
}

// Gamma returns the gamma function applied to e. Gamma is evaluated
// exactly at positive integers and at half integers.
func Gamma(e Expr) Expr {
	if hasNaN(e) {
		return NaN
	}
	if n, ok := e.(*Num); ok {
		if v, ok := exactGamma(n); ok {
			return v
		}
	}
	return &Func{name: "gamma", fargs: []Expr{e}}
}

// BesselK returns the modified Bessel function of the second kind of
// order nu applied to x. Since K₋ᵥ = Kᵥ, negative numeric orders are
// replaced by their absolute value.
func BesselK(nu, x Expr) Expr {
	if hasNaN(nu, x) {
		return NaN
	}
	if n, ok := nu.(*Num); ok && n.Sign() < 0 {
		nu = newNum(new(big.Rat).Neg(n.r))
	}
	return &Func{name: "besselk", fargs: []Expr{nu, x}}
}

// exactGamma evaluates gamma at integers and half integers
func exactGamma(n *Num) (Expr, bool) {
	if n.r.Num().CmpAbs(big.NewInt(2*maxExactGamma)) > 0 {
		return nil, false
	}

	if n.IsInt() {
		k := n.r.Num().Int64()
		if k <= 0 {
			// Pole
			return nil, false
		}
		return newNum(new(big.Rat).SetInt(factorial(k - 1))), true
	}

	if n.r.Denom().Cmp(big.NewInt(2)) != 0 {
		return nil, false
	}

	// n = m + 1/2
	m := new(big.Int).Div(n.r.Num(), big.NewInt(2)).Int64()
	sqrtPi := Pow(Pi, half)
	if m >= 0 {
		// Γ(m + 1/2) = (2m)! / (4^m m!) √π
		c := new(big.Rat).SetFrac(factorial(2*m),
			new(big.Int).Mul(pow4(m), factorial(m)))
		return Mul(newNum(c), sqrtPi), true
	}

	// Γ(1/2 - j) = (-4)^j j! / (2j)! √π
	j := -m
	c := new(big.Rat).SetFrac(new(big.Int).Mul(pow4(j), factorial(j)),
		factorial(2*j))
	if j%2 == 1 {
		c.Neg(c)
	}
	return Mul(newNum(c), sqrtPi), true
}

func factorial(n int64) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(2, n)
}

func pow4(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(4), big.NewInt(n), nil)
}

// Name returns the name of the function
func (f *Func) Name() string { return f.name }

// Args returns the arguments the function is applied to
func (f *Func) Args() []Expr {
	return append([]Expr(nil), f.fargs...)
}

func (f *Func) args() []Expr      { return f.fargs }
func (f *Func) key() string       { return joinKeys("f:"+f.name, f.fargs) }
func (f *Func) Equal(o Expr) bool { return equal(f, o) }

func (f *Func) Subs(env map[string]Expr) Expr {
	a := subsAll(f.fargs, env)
	switch f.name {
	case "exp":
		return Exp(a[0])
	case "gamma":
		return Gamma(a[0])
	case "besselk":
		return BesselK(a[0], a[1])
	}
	return &Func{name: f.name, fargs: a}
}

func (f *Func) Evalf(env map[string]float64) (float64, bool) {
	vals := make([]float64, len(f.fargs))
	for i, a := range f.fargs {
		v, ok := a.Evalf(env)
		if !ok {
			return 0, false
		}
		vals[i] = v
	}

	var v float64
	switch f.name {
	case "exp":
		v = math.Exp(vals[0])
	case "gamma":
		v = math.Gamma(vals[0])
	case "besselk":
		v = BesselKValue(vals[0], vals[1])
	default:
		return 0, false
	}
	return v, finite(v)
}

func (f *Func) String() string {
	parts := make([]string, len(f.fargs))
	for i, a := range f.fargs {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}
