package sym

import "math"

// signTolerance is the magnitude below which a numerically evaluated
// expression is not trusted to have a definite sign
const signTolerance = 1e-12

// Truth is the result of a symbolic predicate, which may be unable to
// decide a property of an expression
type Truth int8

const (
	// Indeterminate means the property could be neither proven nor
	// disproven
	Indeterminate Truth = iota
	True
	False
)

// TruthOf converts a bool to a Truth
func TruthOf(b bool) Truth {
	if b {
		return True
	}
	return False
}

// Not returns the negation of t. The negation of Indeterminate is
// Indeterminate.
func (t Truth) Not() Truth {
	switch t {
	case True:
		return False
	case False:
		return True
	}
	return Indeterminate
}

func (t Truth) String() string {
	switch t {
	case True:
		return "True"
	case False:
		return "False"
	}
	return "Indeterminate"
}

// IsPositive returns whether e is provably a strictly positive real
// number (True), provably not one (False), or undecidable with the
// information available (Indeterminate). Expressions without free
// symbols are decided numerically when structural rules do not apply.
func IsPositive(e Expr) Truth {
	if IsReal(e) == False {
		return False
	}
	s, ok := signOf(e)
	if !ok {
		return Indeterminate
	}
	return TruthOf(s > 0)
}

// IsNonPositive returns whether e is provably a real number <= 0
func IsNonPositive(e Expr) Truth {
	if IsReal(e) == False {
		return False
	}
	s, ok := signOf(e)
	if !ok {
		return Indeterminate
	}
	return TruthOf(s <= 0)
}

// signOf returns the sign of a real expression, and whether it could
// be determined.
func signOf(e Expr) (int, bool) {
	switch v := e.(type) {
	case *Num:
		return v.Sign(), true

	case *Const:
		if v == Pi {
			return 1, true
		}
		return 0, false

	case *Symbol:
		if v.Is(Positive) {
			return 1, true
		}
		return 0, false

	case *Sum:
		pos, neg := 0, 0
		known := true
		for _, t := range v.terms {
			s, ok := signOf(t)
			if !ok {
				known = false
				break
			}
			switch {
			case s > 0:
				pos++
			case s < 0:
				neg++
			}
		}
		if known {
			switch {
			case neg == 0 && pos > 0:
				return 1, true
			case pos == 0 && neg > 0:
				return -1, true
			case pos == 0 && neg == 0:
				return 0, true
			}
		}

	case *Product:
		sign := 1
		known := true
		for _, f := range v.factors {
			s, ok := signOf(f)
			if !ok {
				known = false
				break
			}
			sign *= s
		}
		if known {
			return sign, true
		}

	case *Power:
		bs, ok := signOf(v.base)
		if ok && bs > 0 && IsReal(v.exp) == True {
			return 1, true
		}
		if n, isNum := v.exp.(*Num); ok && isNum && n.IsInt() && bs != 0 {
			if n.r.Num().Bit(0) == 0 {
				return 1, true
			}
			return bs, true
		}

	case *Func:
		switch v.name {
		case "exp":
			if IsReal(v.fargs[0]) == True {
				return 1, true
			}
		case "gamma":
			if s, ok := signOf(v.fargs[0]); ok && s > 0 {
				return 1, true
			}
		case "besselk":
			s, ok := signOf(v.fargs[1])
			if ok && s > 0 && IsReal(v.fargs[0]) == True {
				return 1, true
			}
		}
	}

	return numericSign(e)
}

// numericSign decides the sign of an expression without free symbols
// by evaluating it.
func numericSign(e Expr) (int, bool) {
	if !IsConstant(e) || IsReal(e) == False {
		return 0, false
	}
	v, ok := e.Evalf(nil)
	if !ok || math.Abs(v) <= signTolerance {
		return 0, false
	}
	if v > 0 {
		return 1, true
	}
	return -1, true
}

// IsReal returns whether e is provably real valued
func IsReal(e Expr) Truth {
	switch v := e.(type) {
	case *Num:
		return True

	case *Const:
		if v == NaN {
			return Indeterminate
		}
		return TruthOf(v.real)

	case *Symbol:
		if v.Is(Real) {
			return True
		}
		return Indeterminate

	case *Sum:
		nonReal := 0
		for _, t := range v.terms {
			switch IsReal(t) {
			case Indeterminate:
				return Indeterminate
			case False:
				nonReal++
			}
		}
		if nonReal == 1 {
			// A single non-real term cannot be cancelled by real terms
			return False
		}
		if nonReal == 0 {
			return True
		}
		return Indeterminate

	case *Product:
		nonReal := 0
		for _, f := range v.factors {
			switch IsReal(f) {
			case Indeterminate:
				return Indeterminate
			case False:
				nonReal++
			default:
				// A real factor that may be zero makes the product real
				if s, ok := signOf(f); !ok || s == 0 {
					if nonReal > 0 {
						return Indeterminate
					}
				}
			}
		}
		if nonReal == 0 {
			return True
		}
		if nonReal == 1 && pureImaginaryFactors(v) {
			return False
		}
		return Indeterminate

	case *Power:
		if b, ok := v.base.(*Num); ok && b.Sign() < 0 {
			if n, isNum := v.exp.(*Num); isNum && !n.IsInt() {
				return False
			}
		}
		if IsReal(v.base) == True {
			if n, ok := v.exp.(*Num); ok && n.IsInt() {
				return True
			}
			if s, ok := signOf(v.base); ok && s > 0 && IsReal(v.exp) == True {
				return True
			}
		}
		return Indeterminate

	case *Func:
		switch v.name {
		case "exp", "gamma":
			if IsReal(v.fargs[0]) == True {
				return True
			}
		case "besselk":
			s, ok := signOf(v.fargs[1])
			if ok && s > 0 && IsReal(v.fargs[0]) == True {
				return True
			}
		}
	}
	return Indeterminate
}

// pureImaginaryFactors returns whether every real factor of p has a
// known non-zero sign, so a single imaginary factor makes p non-real.
func pureImaginaryFactors(p *Product) bool {
	for _, f := range p.factors {
		if IsReal(f) != True {
			continue
		}
		if s, ok := signOf(f); !ok || s == 0 {
			return false
		}
	}
	return true
}
