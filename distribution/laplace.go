package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// Laplace is a multivariate (asymmetric) Laplace distribution with
// location μ and scale matrix Σ. With q = μᵀΣ⁻¹μ, r = xᵀΣ⁻¹x and
// v = 1 - k/2 the density is
//
//		f(x) = 2 (2π)^(-k/2) |Σ|^(-1/2) (r/(2+q))^(v/2)
//		       Kᵥ(√((2+q)r)) exp(xᵀΣ⁻¹μ)
//
// where Kᵥ is the modified Bessel function of the second kind. In one
// dimension K_½ has a closed form and the density reduces to
//
//		f(x) = (|Σ|(2+q))^(-1/2) exp(xΣ⁻¹μ - √((2+q)r))
//
// which also holds at x = 0, where the general form is 0·∞. In higher
// dimensions the density diverges at x = 0.
type Laplace struct {
	locScale
}

// NewLaplace returns a new Laplace, validated as NewNormal validates a
// Normal
func NewLaplace(mu []sym.Expr, sigma *sym.Matrix, opts ...Option) (*Laplace,
	error) {
	l := &Laplace{newLocScale(mu, sigma)}
	if err := l.Check(opts...); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Laplace) Kind() Kind { return KindLaplace }

func (l *Laplace) Params() []Param {
	return []Param{{"mu", l.Mu()}, {"sigma", l.sigma}}
}

func (l *Laplace) Check(opts ...Option) error {
	return checkShape(KindLaplace, l.mu, l.sigma, newConfig(opts))
}

func (l *Laplace) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindLaplace, l.Dim(), args); err != nil {
		return nil, err
	}
	inv, err := l.sigma.Inverse()
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	det, err := l.sigma.Det()
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	q, err := inv.Bilinear(l.mu, l.mu)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	r, err := inv.Bilinear(args, args)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	cross, err := inv.Bilinear(args, l.mu)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	k := int64(l.Dim())
	v := sym.Rat(2-k, 2)
	twoPlusQ := sym.Add(sym.Int(2), q)

	if k == 1 {
		return sym.Mul(
			sym.Pow(sym.Mul(det, twoPlusQ), sym.Rat(-1, 2)),
			sym.Exp(sym.Sub(cross, sym.Sqrt(sym.Mul(twoPlusQ, r)))),
		), nil
	}

	return sym.Mul(
		sym.Int(2),
		sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Rat(-k, 2)),
		sym.Pow(det, sym.Rat(-1, 2)),
		sym.Pow(sym.Div(r, twoPlusQ), sym.Mul(sym.Rat(1, 2), v)),
		sym.BesselK(v, sym.Sqrt(sym.Mul(twoPlusQ, r))),
		sym.Exp(cross),
	), nil
}

// Marginal returns the Laplace density with the location and scale
// restricted to the given components
func (l *Laplace) Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda,
	error) {
	return l.marginal(indices, syms, func(ls locScale) Distribution {
		return &Laplace{ls}
	})
}

func (l *Laplace) Mean() ([]sym.Expr, error) { return l.Mu(), nil }
