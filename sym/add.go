package sym

import (
	"math/big"
	"sort"
	"strings"
)

// Sum is a canonical sum of two or more terms. Numeric terms are
// folded into a single leading constant and like terms are collected,
// so x + 2x is stored as 3x.
type Sum struct {
	terms []Expr
}

// Add returns the canonical sum of terms
func Add(terms ...Expr) Expr {
	constant := new(big.Rat)
	coeffs := map[string]*big.Rat{}
	rests := map[string]Expr{}

	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case *Num:
			constant.Add(constant, v.r)
		case *Sum:
			for _, t := range v.terms {
				walk(t)
			}
		default:
			c, rest := splitCoeff(e)
			k := rest.key()
			if acc, ok := coeffs[k]; ok {
				acc.Add(acc, c.r)
			} else {
				coeffs[k] = new(big.Rat).Set(c.r)
				rests[k] = rest
			}
		}
	}
	for _, t := range terms {
		walk(t)
	}
	if _, ok := rests[NaN.key()]; ok {
		return NaN
	}

	keys := make([]string, 0, len(coeffs))
	for k := range coeffs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Expr, 0, len(keys)+1)
	if constant.Sign() != 0 {
		out = append(out, newNum(constant))
	}
	for _, k := range keys {
		c := coeffs[k]
		if c.Sign() == 0 {
			continue
		}
		out = append(out, withCoeff(newNum(c), rests[k]))
	}

	switch len(out) {
	case 0:
		return zero
	case 1:
		return out[0]
	}
	return &Sum{terms: out}
}

// Sub returns a - b
func Sub(a, b Expr) Expr {
	return Add(a, Neg(b))
}

// Neg returns -e
func Neg(e Expr) Expr {
	return Mul(negOne, e)
}

// splitCoeff splits a canonical non-sum term into its rational
// coefficient and the remaining factors.
func splitCoeff(e Expr) (*Num, Expr) {
	p, ok := e.(*Product)
	if !ok {
		return one, e
	}
	c, isNum := p.factors[0].(*Num)
	if !isNum {
		return one, e
	}
	if len(p.factors) == 2 {
		return c, p.factors[1]
	}
	return c, &Product{factors: p.factors[1:]}
}

// withCoeff reattaches a coefficient to a canonical term produced by
// splitCoeff without re-running the simplifier.
func withCoeff(c *Num, rest Expr) Expr {
	if c.IsOne() {
		return rest
	}
	if p, ok := rest.(*Product); ok {
		factors := make([]Expr, 0, len(p.factors)+1)
		factors = append(factors, c)
		factors = append(factors, p.factors...)
		return &Product{factors: factors}
	}
	return &Product{factors: []Expr{c, rest}}
}

// Terms returns the terms of the sum
func (s *Sum) Terms() []Expr {
	return append([]Expr(nil), s.terms...)
}

func (s *Sum) args() []Expr      { return s.terms }
func (s *Sum) key() string       { return joinKeys("+", s.terms) }
func (s *Sum) Equal(o Expr) bool { return equal(s, o) }

func (s *Sum) Subs(env map[string]Expr) Expr {
	return Add(subsAll(s.terms, env)...)
}

func (s *Sum) Evalf(env map[string]float64) (float64, bool) {
	acc := 0.0
	for _, t := range s.terms {
		v, ok := t.Evalf(env)
		if !ok {
			return 0, false
		}
		acc += v
	}
	return acc, finite(acc)
}

func (s *Sum) String() string {
	var sb strings.Builder
	for i, t := range s.terms {
		str := t.String()
		if i == 0 {
			sb.WriteString(str)
			continue
		}
		if strings.HasPrefix(str, "-") {
			sb.WriteString(" - ")
			sb.WriteString(str[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(str)
		}
	}
	return sb.String()
}
