package sym

import (
	"math/big"
	"sort"
	"strings"
)

// maxCanonicalPasses bounds the number of times Mul re-collects
// factors when rebuilding a power exposes new factors.
const maxCanonicalPasses = 16

// Product is a canonical product of factors. A rational coefficient,
// if not one, is always the first factor. Factors with a common base
// are merged by adding exponents, and exp(a)·exp(b) is merged into
// exp(a+b).
type Product struct {
	factors []Expr
}

// expBase stands in for Euler's number when collecting exp factors
var expBase = &Const{name: "E"}

// Mul returns the canonical product of factors
func Mul(factors ...Expr) Expr {
	return mul(factors, 0)
}

// Div returns a / b
func Div(a, b Expr) Expr {
	return Mul(a, Pow(b, negOne))
}

func mul(factors []Expr, pass int) Expr {
	coeff := big.NewRat(1, 1)
	exps := map[string][]Expr{}
	bases := map[string]Expr{}
	undefined, pole := false, false

	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case *Num:
			coeff.Mul(coeff, v.r)
			return
		case *Product:
			for _, f := range v.factors {
				walk(f)
			}
			return
		}
		if e == NaN {
			undefined = true
		}
		if isPole(e) {
			pole = true
		}
		b, x := asBaseExp(e)
		k := b.key()
		if _, ok := bases[k]; !ok {
			bases[k] = b
		}
		exps[k] = append(exps[k], x)
	}
	for _, f := range factors {
		walk(f)
	}

	// zero annihilates every finite factor, but zero times a pole is
	// undefined
	if undefined || (coeff.Sign() == 0 && pole) {
		return NaN
	}
	if coeff.Sign() == 0 {
		return zero
	}

	keys := make([]string, 0, len(bases))
	for k := range bases {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rebuilt := make([]Expr, 0, len(keys))
	unstable := false
	for _, k := range keys {
		p := fromBaseExp(bases[k], Add(exps[k]...))
		switch v := p.(type) {
		case *Num:
			coeff.Mul(coeff, v.r)
			if coeff.Sign() == 0 {
				if pole {
					return NaN
				}
				return zero
			}
			continue
		case *Product:
			// A rebuilt power split into new factors, e.g. I^3 -> -I
			unstable = true
		}
		rebuilt = append(rebuilt, p)
	}

	if unstable && pass < maxCanonicalPasses {
		all := make([]Expr, 0, len(rebuilt)+1)
		all = append(all, newNum(coeff))
		all = append(all, rebuilt...)
		return mul(all, pass+1)
	}

	sortByKey(rebuilt)
	c := newNum(coeff)

	if len(rebuilt) == 0 {
		return c
	}
	if c.IsOne() {
		if len(rebuilt) == 1 {
			return rebuilt[0]
		}
		return &Product{factors: rebuilt}
	}

	// A number times a single sum distributes over the sum
	if len(rebuilt) == 1 {
		if s, ok := rebuilt[0].(*Sum); ok {
			terms := make([]Expr, len(s.terms))
			for i, t := range s.terms {
				terms[i] = scaleTerm(c, t)
			}
			return Add(terms...)
		}
	}

	return &Product{factors: append([]Expr{c}, rebuilt...)}
}

// scaleTerm multiplies a canonical term of a sum by a number without
// re-collecting its factors.
func scaleTerm(c *Num, t Expr) Expr {
	if n, ok := t.(*Num); ok {
		return newNum(new(big.Rat).Mul(c.r, n.r))
	}
	tc, rest := splitCoeff(t)
	prod := new(big.Rat).Mul(c.r, tc.r)
	return withCoeff(newNum(prod), rest)
}

// isPole returns whether e is provably infinite: zero raised to a
// negative power, gamma at a non-positive integer, or a Bessel K
// function at zero.
func isPole(e Expr) bool {
	switch v := e.(type) {
	case *Power:
		b, ok := v.base.(*Num)
		return ok && b.IsZero() && IsPositive(Neg(v.exp)) == True
	case *Func:
		switch v.name {
		case "gamma":
			n, ok := v.fargs[0].(*Num)
			return ok && n.IsInt() && n.Sign() <= 0
		case "besselk":
			x, ok := v.fargs[1].(*Num)
			return ok && x.IsZero()
		}
	}
	return false
}

// hasNaN returns whether any of es is NaN
func hasNaN(es ...Expr) bool {
	for _, e := range es {
		if e == NaN {
			return true
		}
	}
	return false
}

// asBaseExp returns the base and exponent e is collected under in a
// product.
func asBaseExp(e Expr) (Expr, Expr) {
	switch v := e.(type) {
	case *Power:
		return v.base, v.exp
	case *Func:
		if v.name == "exp" {
			return expBase, v.fargs[0]
		}
	}
	return e, one
}

func fromBaseExp(base, exp Expr) Expr {
	if base == expBase {
		return Exp(exp)
	}
	return Pow(base, exp)
}

// Factors returns the factors of the product, coefficient first
func (p *Product) Factors() []Expr {
	return append([]Expr(nil), p.factors...)
}

// Coeff returns the rational coefficient of the product
func (p *Product) Coeff() *Num {
	c, _ := splitCoeff(p)
	return c
}

func (p *Product) args() []Expr      { return p.factors }
func (p *Product) key() string       { return joinKeys("*", p.factors) }
func (p *Product) Equal(o Expr) bool { return equal(p, o) }

func (p *Product) Subs(env map[string]Expr) Expr {
	return Mul(subsAll(p.factors, env)...)
}

func (p *Product) Evalf(env map[string]float64) (float64, bool) {
	acc := 1.0
	for _, f := range p.factors {
		v, ok := f.Evalf(env)
		if !ok {
			return 0, false
		}
		acc *= v
	}
	return acc, finite(acc)
}

func (p *Product) String() string {
	var num, den []string
	sign := ""
	for _, f := range p.factors {
		if n, ok := f.(*Num); ok {
			r := n.BigRat()
			if r.Sign() < 0 {
				sign = "-"
				r.Neg(r)
			}
			if !r.Num().IsInt64() || r.Num().Int64() != 1 {
				num = append(num, r.Num().String())
			}
			if !r.IsInt() {
				den = append(den, r.Denom().String())
			}
			continue
		}
		if pw, ok := f.(*Power); ok {
			if e, isNum := pw.exp.(*Num); isNum && e.Sign() < 0 {
				den = append(den, parenthesize(Pow(pw.base, Mul(negOne, e))))
				continue
			}
		}
		num = append(num, parenthesize(f))
	}

	numStr := "1"
	if len(num) > 0 {
		numStr = strings.Join(num, "*")
	}
	if len(den) == 0 {
		return sign + numStr
	}
	denStr := strings.Join(den, "*")
	if len(den) > 1 {
		denStr = "(" + denStr + ")"
	}
	return sign + numStr + "/" + denStr
}

func parenthesize(e Expr) string {
	if _, ok := e.(*Sum); ok {
		return "(" + e.String() + ")"
	}
	return e.String()
}
