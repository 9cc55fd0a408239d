// Package sym provides exact symbolic expressions, matrices and
// predicates used to write probability densities in closed form.
//
// Expressions are immutable. Every constructor (Add, Mul, Pow, Exp, ...)
// returns a canonical form, so repeating a construction on equal inputs
// gives structurally equal expressions, and many equal values built in
// different ways also compare equal:
//
//		Mul(Int(2), Pi, Pow(Int(2), Rat(-1, 2)))  ≡  Mul(Sqrt(Int(2)), Pi)
//
// The canonical form is not complete. A number times a lone sum is
// distributed over its terms while a number times a sum and another
// factor is not, so Mul(Mul(Int(2), Add(x, y)), z) and
// Mul(Int(2), Mul(Add(x, y), z)) are equal values that compare unequal.
//
// Numbers are exact rationals. Rational powers of rationals are
// reduced to a rational coefficient times prime radicals, so √8 is
// stored as 2·√2 and 1/√2 as ½·√2.
package sym

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

// Expr is a symbolic expression
type Expr interface {
	fmt.Stringer

	// Equal returns whether the receiver and other are structurally
	// equal. Structurally equal expressions represent equal values, but
	// equal values may have different structure.
	Equal(other Expr) bool

	// Subs simultaneously replaces every symbol whose name is a key
	// of env with the mapped expression, rebuilding the expression
	// in canonical form.
	Subs(env map[string]Expr) Expr

	// Evalf numerically evaluates the expression, looking up free
	// symbols in env. It returns false if the expression has an
	// unbound symbol or is not a finite real number.
	Evalf(env map[string]float64) (float64, bool)

	args() []Expr
	key() string
}

// ================================================================
// Num
// ================================================================

// Num is an exact rational number
type Num struct {
	r *big.Rat
}

var (
	zero    = Int(0)
	one     = Int(1)
	negOne  = Int(-1)
	half    = Rat(1, 2)
	negHalf = Rat(-1, 2)
)

// Int returns n as a number
func Int(n int64) *Num {
	return &Num{r: new(big.Rat).SetInt64(n)}
}

// Rat returns the rational number p/q. Rat panics if q is zero.
func Rat(p, q int64) *Num {
	if q == 0 {
		panic("sym: rational with zero denominator")
	}
	return &Num{r: big.NewRat(p, q)}
}

// NewNum returns a number holding a copy of r
func NewNum(r *big.Rat) *Num {
	return &Num{r: new(big.Rat).Set(r)}
}

func newNum(r *big.Rat) *Num { return &Num{r: r} }

// BigRat returns a copy of the underlying rational
func (n *Num) BigRat() *big.Rat { return new(big.Rat).Set(n.r) }

// Float64 returns the nearest float64 to n
func (n *Num) Float64() float64 {
	f, _ := n.r.Float64()
	return f
}

func (n *Num) Sign() int       { return n.r.Sign() }
func (n *Num) IsInt() bool     { return n.r.IsInt() }
func (n *Num) IsZero() bool    { return n.r.Sign() == 0 }
func (n *Num) IsOne() bool     { return n.r.Cmp(one.r) == 0 }
func (n *Num) IsNegOne() bool  { return n.r.Cmp(negOne.r) == 0 }
func (n *Num) args() []Expr    { return nil }
func (n *Num) key() string     { return "n:" + n.r.RatString() }
func (n *Num) Equal(o Expr) bool { return equal(n, o) }

func (n *Num) Subs(map[string]Expr) Expr { return n }

func (n *Num) Evalf(map[string]float64) (float64, bool) {
	return n.Float64(), true
}

func (n *Num) String() string { return n.r.RatString() }

// ================================================================
// Symbol
// ================================================================

// Assumption is a property a Symbol is known to have
type Assumption uint8

const (
	// Real marks a symbol as real valued
	Real Assumption = 1 << iota

	// Positive marks a symbol as real valued and strictly positive
	Positive
)

// Symbol is a named free variable
type Symbol struct {
	name   string
	assume Assumption
}

// NewSymbol returns a new symbol with the given name and assumptions
func NewSymbol(name string, assumptions ...Assumption) *Symbol {
	s := &Symbol{name: name}
	for _, a := range assumptions {
		s.assume |= a
	}
	if s.assume&Positive != 0 {
		s.assume |= Real
	}
	return s
}

// Symbols returns one plain symbol per whitespace separated name
func Symbols(names string) []*Symbol {
	fields := strings.Fields(names)
	syms := make([]*Symbol, len(fields))
	for i, f := range fields {
		syms[i] = NewSymbol(f)
	}
	return syms
}

func (s *Symbol) Name() string                { return s.name }
func (s *Symbol) Is(a Assumption) bool        { return s.assume&a == a }
func (s *Symbol) String() string              { return s.name }
func (s *Symbol) args() []Expr                { return nil }
func (s *Symbol) Equal(o Expr) bool           { return equal(s, o) }
func (s *Symbol) key() string                 { return fmt.Sprintf("s:%s#%d", s.name, s.assume) }

func (s *Symbol) Subs(env map[string]Expr) Expr {
	if v, ok := env[s.name]; ok {
		return v
	}
	return s
}

func (s *Symbol) Evalf(env map[string]float64) (float64, bool) {
	v, ok := env[s.name]
	return v, ok
}

// ================================================================
// Const
// ================================================================

// Const is a named mathematical constant
type Const struct {
	name string
	val  float64
	real bool
}

var (
	// Pi is the ratio of a circle's circumference to its diameter
	Pi = &Const{name: "pi", val: math.Pi, real: true}

	// I is the imaginary unit
	I = &Const{name: "I", val: math.NaN()}

	// NaN is an undefined value, such as zero times a pole
	NaN = &Const{name: "nan", val: math.NaN()}
)

func (c *Const) Name() string                { return c.name }
func (c *Const) String() string              { return c.name }
func (c *Const) args() []Expr                { return nil }
func (c *Const) key() string                 { return "c:" + c.name }
func (c *Const) Equal(o Expr) bool           { return equal(c, o) }
func (c *Const) Subs(map[string]Expr) Expr   { return c }

func (c *Const) Evalf(map[string]float64) (float64, bool) {
	return c.val, c.real
}

// ================================================================
// Helpers
// ================================================================

func equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.key() == b.key()
}

// Equal returns whether a and b are structurally equal
func Equal(a, b Expr) bool { return equal(a, b) }

func joinKeys(prefix string, exprs []Expr) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteByte('(')
	for i, e := range exprs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(e.key())
	}
	sb.WriteByte(')')
	return sb.String()
}

func sortByKey(exprs []Expr) {
	sort.SliceStable(exprs, func(i, j int) bool {
		return exprs[i].key() < exprs[j].key()
	})
}

func subsAll(exprs []Expr, env map[string]Expr) []Expr {
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = e.Subs(env)
	}
	return out
}

// FreeSymbols returns the symbols appearing in e, sorted by name
func FreeSymbols(e Expr) []*Symbol {
	seen := map[string]*Symbol{}
	var walk func(Expr)
	walk = func(e Expr) {
		if s, ok := e.(*Symbol); ok {
			seen[s.key()] = s
			return
		}
		for _, a := range e.args() {
			walk(a)
		}
	}
	walk(e)

	syms := make([]*Symbol, 0, len(seen))
	for _, s := range seen {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].key() < syms[j].key()
	})
	return syms
}

// IsConstant returns whether e contains no free symbols
func IsConstant(e Expr) bool {
	if _, ok := e.(*Symbol); ok {
		return false
	}
	for _, a := range e.args() {
		if !IsConstant(a) {
			return false
		}
	}
	return true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
