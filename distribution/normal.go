package distribution

import (
	"github.com/samuelfneumann/symdist/sym"
)

// Normal is a multivariate normal distribution with mean vector μ and
// covariance matrix Σ:
//
//		f(x) = (2π)^(-k/2) |Σ|^(-1/2) exp(-½ (x-μ)ᵀ Σ⁻¹ (x-μ))
type Normal struct {
	locScale
}

// NewNormal returns a new Normal. Σ must be a square matrix with one
// row per component of μ, with no eigenvalue that is provably
// non-positive.
func NewNormal(mu []sym.Expr, sigma *sym.Matrix, opts ...Option) (*Normal,
	error) {
	n := &Normal{newLocScale(mu, sigma)}
	if err := n.Check(opts...); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Normal) Kind() Kind { return KindNormal }

func (n *Normal) Params() []Param {
	return []Param{{"mu", n.Mu()}, {"sigma", n.sigma}}
}

func (n *Normal) Check(opts ...Option) error {
	return checkShape(KindNormal, n.mu, n.sigma, newConfig(opts))
}

func (n *Normal) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindNormal, n.Dim(), args); err != nil {
		return nil, err
	}
	q, _, det, err := n.quadratic(args)
	if err != nil {
		return nil, err
	}

	k := int64(n.Dim())
	return sym.Mul(
		sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Rat(-k, 2)),
		sym.Pow(det, sym.Rat(-1, 2)),
		sym.Exp(sym.Mul(sym.Rat(-1, 2), q)),
	), nil
}

// Marginal returns the normal density with the location and covariance
// restricted to the given components
func (n *Normal) Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda,
	error) {
	return n.marginal(indices, syms, func(l locScale) Distribution {
		return &Normal{l}
	})
}

func (n *Normal) Mean() ([]sym.Expr, error) { return n.Mu(), nil }
