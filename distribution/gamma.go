package distribution

import (
	"github.com/samuelfneumann/symdist/sym"
)

// Gamma is a univariate gamma distribution with shape α and rate β:
//
//		f(x) = β^α / Γ(α) x^(α-1) exp(-βx)
type Gamma struct {
	shape, rate sym.Expr
}

// NewGamma returns a new Gamma. The shape and rate must be provably
// positive.
func NewGamma(shape, rate sym.Expr) (*Gamma, error) {
	g := &Gamma{shape: shape, rate: rate}
	if err := g.Check(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Gamma) Kind() Kind         { return KindGamma }
func (g *Gamma) Dim() int           { return 1 }
func (g *Gamma) Set() Set           { return Product(PositiveReals) }
func (g *Gamma) IsContinuous() bool { return true }

// Shape returns α
func (g *Gamma) Shape() sym.Expr { return g.shape }

// Rate returns β
func (g *Gamma) Rate() sym.Expr { return g.rate }

func (g *Gamma) Params() []Param {
	return []Param{{"shape", g.shape}, {"rate", g.rate}}
}

// Check verifies that the shape and rate are provably positive.
// Options are accepted to satisfy Distribution and do not relax the
// check.
func (g *Gamma) Check(...Option) error {
	if err := checkPositive(KindGamma, "shape", g.shape); err != nil {
		return err
	}
	return checkPositive(KindGamma, "rate", g.rate)
}

func (g *Gamma) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindGamma, 1, args); err != nil {
		return nil, err
	}
	x := args[0]
	return sym.Mul(
		sym.Pow(g.rate, g.shape),
		sym.Pow(sym.Gamma(g.shape), sym.Int(-1)),
		sym.Pow(x, sym.Sub(g.shape, sym.Int(1))),
		sym.Exp(sym.Neg(sym.Mul(g.rate, x))),
	), nil
}

// Mean returns α/β
func (g *Gamma) Mean() ([]sym.Expr, error) {
	return []sym.Expr{sym.Div(g.shape, g.rate)}, nil
}
