package sym

import (
	"math"
	"math/big"
	"sort"
)

const (
	// maxExactExponent bounds integer exponents evaluated exactly
	maxExactExponent = 4096

	// maxTrialDivisor bounds the trial division used to reduce
	// rational radicals to prime radicals
	maxTrialDivisor = 1 << 20
)

// Power is base raised to exp
type Power struct {
	base, exp Expr
}

// Sqrt returns the principal square root of e
func Sqrt(e Expr) Expr {
	return Pow(e, half)
}

// Pow returns the canonical form of base^exp
func Pow(base, exp Expr) Expr {
	if hasNaN(base, exp) {
		return NaN
	}
	en, expIsNum := exp.(*Num)
	if expIsNum {
		if en.IsZero() {
			return one
		}
		if en.IsOne() {
			return base
		}
	}

	switch b := base.(type) {
	case *Num:
		if b.IsOne() {
			return one
		}
		if expIsNum {
			return numPow(b, en)
		}

	case *Power:
		// (b^e1)^e2 = b^(e1*e2) holds for integer e2 or positive b
		if (expIsNum && en.IsInt()) || IsPositive(b.base) == True {
			return Pow(b.base, Mul(b.exp, exp))
		}

	case *Product:
		if expIsNum && en.IsInt() {
			out := make([]Expr, len(b.factors))
			for i, f := range b.factors {
				out[i] = Pow(f, exp)
			}
			return Mul(out...)
		}

		// Positive factors may be pulled out of a fractional power
		var pos, rest []Expr
		for _, f := range b.factors {
			if IsPositive(f) == True {
				pos = append(pos, Pow(f, exp))
			} else {
				rest = append(rest, f)
			}
		}
		if len(pos) > 0 {
			if len(rest) > 0 {
				pos = append(pos, Pow(Mul(rest...), exp))
			}
			return Mul(pos...)
		}

	case *Func:
		if b.name == "exp" && expIsNum {
			return Exp(Mul(b.fargs[0], exp))
		}

	case *Const:
		if b == I && expIsNum && en.IsInt() {
			return imaginaryPow(en)
		}
	}

	return &Power{base: base, exp: exp}
}

// imaginaryPow returns I^n for integer n
func imaginaryPow(n *Num) Expr {
	m := new(big.Int).Mod(n.r.Num(), big.NewInt(4)).Int64()
	switch m {
	case 0:
		return one
	case 1:
		return I
	case 2:
		return negOne
	}
	return &Product{factors: []Expr{negOne, I}}
}

// numPow returns b^e for rational b and e. Integer exponents are
// evaluated exactly. For fractional exponents, the result is written
// as a rational coefficient times prime radicals p^f with 0 < f < 1.
func numPow(b, e *Num) Expr {
	if e.IsInt() {
		return intPow(b, e)
	}

	switch b.Sign() {
	case 0:
		if e.Sign() > 0 {
			return zero
		}
		return &Power{base: b, exp: e}

	case -1:
		// b^e = |b|^e * (-1)^e
		abs := newNum(new(big.Rat).Neg(b.r))
		return Mul(numPow(abs, e), negOnePow(e))
	}

	coeff := big.NewRat(1, 1)
	var radicals []Expr

	addPrime := func(p *big.Int, count int64, sign int64) {
		x := new(big.Rat).Mul(e.r, big.NewRat(count*sign, 1))
		n, f := splitRat(x)
		if n.Sign() != 0 {
			coeff.Mul(coeff, bigPow(p, n))
		}
		if f.Sign() != 0 {
			radicals = append(radicals, &Power{
				base: newNum(new(big.Rat).SetInt(p)),
				exp:  newNum(f),
			})
		}
	}
	for _, pf := range factorize(b.r.Num()) {
		addPrime(pf.prime, pf.count, 1)
	}
	for _, pf := range factorize(b.r.Denom()) {
		addPrime(pf.prime, pf.count, -1)
	}

	c := newNum(coeff)
	if len(radicals) == 0 {
		return c
	}
	sortByKey(radicals)
	if c.IsOne() && len(radicals) == 1 {
		return radicals[0]
	}
	if c.IsOne() {
		return &Product{factors: radicals}
	}
	return &Product{factors: append([]Expr{c}, radicals...)}
}

// negOnePow returns (-1)^e for a non-integer rational e
func negOnePow(e *Num) Expr {
	// (-1)^e = (-1)^n * (-1)^f with 0 < f < 1
	n, f := splitRat(e.r)
	sign := one
	if n.Bit(0) == 1 {
		sign = negOne
	}
	if f.Cmp(half.r) == 0 {
		return Mul(sign, I)
	}
	return Mul(sign, &Power{base: negOne, exp: newNum(f)})
}

// intPow returns b^e exactly for integer e
func intPow(b, e *Num) Expr {
	n := e.r.Num()
	if n.CmpAbs(big.NewInt(maxExactExponent)) > 0 {
		return &Power{base: b, exp: e}
	}
	if b.IsZero() {
		if n.Sign() > 0 {
			return zero
		}
		return &Power{base: b, exp: e}
	}

	abs := new(big.Int).Abs(n)
	num := new(big.Int).Exp(new(big.Int).Abs(b.r.Num()), abs, nil)
	den := new(big.Int).Exp(b.r.Denom(), abs, nil)
	if n.Sign() < 0 {
		num, den = den, num
	}
	r := new(big.Rat).SetFrac(num, den)
	if b.Sign() < 0 && abs.Bit(0) == 1 {
		r.Neg(r)
	}
	return newNum(r)
}

// splitRat splits x into floor(x) and x - floor(x)
func splitRat(x *big.Rat) (*big.Int, *big.Rat) {
	n := new(big.Int).Div(x.Num(), x.Denom()) // Euclidean, rounds towards -inf for positive denominators
	f := new(big.Rat).Sub(x, new(big.Rat).SetInt(n))
	return n, f
}

// bigPow returns p^n as a rational for a possibly negative integer n
func bigPow(p, n *big.Int) *big.Rat {
	abs := new(big.Int).Abs(n)
	v := new(big.Int).Exp(p, abs, nil)
	if n.Sign() < 0 {
		return new(big.Rat).SetFrac(big.NewInt(1), v)
	}
	return new(big.Rat).SetInt(v)
}

type primeFactor struct {
	prime *big.Int
	count int64
}

// factorize returns the prime factorization of n > 0 found by trial
// division. A cofactor left after maxTrialDivisor is kept as if it
// were prime.
func factorize(n *big.Int) []primeFactor {
	if n.Cmp(big.NewInt(1)) <= 0 {
		return nil
	}
	if !n.IsUint64() {
		return []primeFactor{{prime: new(big.Int).Set(n), count: 1}}
	}

	v := n.Uint64()
	var out []primeFactor
	for d := uint64(2); d*d <= v && d <= maxTrialDivisor; d++ {
		var c int64
		for v%d == 0 {
			v /= d
			c++
		}
		if c > 0 {
			out = append(out, primeFactor{prime: new(big.Int).SetUint64(d), count: c})
		}
	}
	if v > 1 {
		out = append(out, primeFactor{prime: new(big.Int).SetUint64(v), count: 1})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].prime.Cmp(out[j].prime) < 0 })
	return out
}

// Base returns the base of the power
func (p *Power) Base() Expr { return p.base }

// Exponent returns the exponent of the power
func (p *Power) Exponent() Expr { return p.exp }

func (p *Power) args() []Expr      { return []Expr{p.base, p.exp} }
func (p *Power) key() string       { return "^(" + p.base.key() + "," + p.exp.key() + ")" }
func (p *Power) Equal(o Expr) bool { return equal(p, o) }

func (p *Power) Subs(env map[string]Expr) Expr {
	return Pow(p.base.Subs(env), p.exp.Subs(env))
}

func (p *Power) Evalf(env map[string]float64) (float64, bool) {
	b, ok := p.base.Evalf(env)
	if !ok {
		return 0, false
	}
	e, ok := p.exp.Evalf(env)
	if !ok {
		return 0, false
	}
	v := math.Pow(b, e)
	return v, finite(v)
}

func (p *Power) String() string {
	base := p.base.String()
	switch b := p.base.(type) {
	case *Sum, *Product, *Power:
		base = "(" + base + ")"
	case *Num:
		if !b.IsInt() || b.Sign() < 0 {
			base = "(" + base + ")"
		}
	}

	if e, ok := p.exp.(*Num); ok {
		switch {
		case e.r.Cmp(half.r) == 0:
			return "sqrt(" + p.base.String() + ")"
		case e.IsInt() && e.Sign() > 0:
			return base + "**" + e.String()
		}
		return base + "**(" + e.String() + ")"
	}

	exp := p.exp.String()
	switch p.exp.(type) {
	case *Sum, *Product, *Power:
		exp = "(" + exp + ")"
	}
	return base + "**" + exp
}
