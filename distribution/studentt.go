package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// StudentT is a multivariate Student's t distribution with location μ,
// shape matrix Σ and ν degrees of freedom:
//
//		f(x) = Γ((k+ν)/2) / (Γ(ν/2) (νπ)^(k/2) |Σ|^(1/2))
//		       (1 + (x-μ)ᵀΣ⁻¹(x-μ)/ν)^(-(ν+k)/2)
type StudentT struct {
	locScale
	nu sym.Expr
}

// NewStudentT returns a new StudentT. The shape matrix is validated as
// NewNormal validates a covariance matrix. ν is rejected only if it is
// provably not positive, or if its sign is undecidable and the
// Reject policy is in effect.
func NewStudentT(mu []sym.Expr, sigma *sym.Matrix, nu sym.Expr,
	opts ...Option) (*StudentT, error) {
	t := &StudentT{locScale: newLocScale(mu, sigma), nu: nu}
	if err := t.Check(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *StudentT) Kind() Kind { return KindStudentT }

// Nu returns the degrees of freedom
func (t *StudentT) Nu() sym.Expr { return t.nu }

func (t *StudentT) Params() []Param {
	return []Param{{"mu", t.Mu()}, {"sigma", t.sigma}, {"nu", t.nu}}
}

func (t *StudentT) Check(opts ...Option) error {
	c := newConfig(opts)
	if err := checkShape(KindStudentT, t.mu, t.sigma, c); err != nil {
		return err
	}
	return checkNotNonPositive(KindStudentT, "nu", t.nu, c)
}

func (t *StudentT) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindStudentT, t.Dim(), args); err != nil {
		return nil, err
	}
	q, _, det, err := t.quadratic(args)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}

	k := sym.Int(int64(t.Dim()))
	half := sym.Rat(1, 2)
	return sym.Mul(
		sym.Gamma(sym.Mul(half, sym.Add(k, t.nu))),
		sym.Pow(sym.Gamma(sym.Mul(half, t.nu)), sym.Int(-1)),
		sym.Pow(sym.Mul(t.nu, sym.Pi), sym.Mul(sym.Rat(-1, 2), k)),
		sym.Pow(det, sym.Rat(-1, 2)),
		sym.Pow(
			sym.Add(sym.Int(1), sym.Div(q, t.nu)),
			sym.Mul(sym.Rat(-1, 2), sym.Add(t.nu, k)),
		),
	), nil
}

// Marginal returns the Student's t density with the same degrees of
// freedom and with the location and shape restricted to the given
// components
func (t *StudentT) Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda,
	error) {
	return t.marginal(indices, syms, func(l locScale) Distribution {
		return &StudentT{locScale: l, nu: t.nu}
	})
}

// Mean returns μ if ν > 1 is provable
func (t *StudentT) Mean() ([]sym.Expr, error) {
	if sym.IsPositive(sym.Sub(t.nu, sym.Int(1))) != sym.True {
		return nil, fmt.Errorf("mean: nu = %v: %w", t.nu, ErrUndefined)
	}
	return t.Mu(), nil
}
