package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// UnivariateT is a non-standardised univariate Student's t
// distribution with ν degrees of freedom, location μ and scale σ:
//
//		f(x) = Γ((ν+1)/2) / (Γ(ν/2) √(πν) σ) (1 + ((x-μ)/σ)²/ν)^(-(ν+1)/2)
type UnivariateT struct {
	nu, mu, sigma sym.Expr
}

// NewUnivariateT returns a new UnivariateT. ν and σ are rejected if
// provably not positive and μ if provably not real. Undecidable
// parameters are handled by the Policy in opts.
func NewUnivariateT(nu, mu, sigma sym.Expr, opts ...Option) (*UnivariateT,
	error) {
	t := &UnivariateT{nu: nu, mu: mu, sigma: sigma}
	if err := t.Check(opts...); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *UnivariateT) Kind() Kind         { return KindUnivariateT }
func (t *UnivariateT) Dim() int           { return 1 }
func (t *UnivariateT) Set() Set           { return Reals(1) }
func (t *UnivariateT) IsContinuous() bool { return true }

// Nu returns the degrees of freedom
func (t *UnivariateT) Nu() sym.Expr { return t.nu }

// Mu returns the location
func (t *UnivariateT) Mu() sym.Expr { return t.mu }

// Sigma returns the scale
func (t *UnivariateT) Sigma() sym.Expr { return t.sigma }

func (t *UnivariateT) Params() []Param {
	return []Param{{"nu", t.nu}, {"mu", t.mu}, {"sigma", t.sigma}}
}

func (t *UnivariateT) Check(opts ...Option) error {
	c := newConfig(opts)
	if err := checkNotNonPositive(KindUnivariateT, "nu", t.nu, c); err != nil {
		return err
	}
	if err := checkReal(KindUnivariateT, "mu", t.mu, c); err != nil {
		return err
	}
	return checkNotNonPositive(KindUnivariateT, "sigma", t.sigma, c)
}

func (t *UnivariateT) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindUnivariateT, 1, args); err != nil {
		return nil, err
	}
	z := sym.Div(sym.Sub(args[0], t.mu), t.sigma)
	half := sym.Rat(1, 2)
	nuPlusOne := sym.Add(t.nu, sym.Int(1))

	return sym.Mul(
		sym.Gamma(sym.Mul(half, nuPlusOne)),
		sym.Pow(sym.Gamma(sym.Mul(half, t.nu)), sym.Int(-1)),
		sym.Pow(sym.Mul(sym.Pi, t.nu), sym.Rat(-1, 2)),
		sym.Pow(t.sigma, sym.Int(-1)),
		sym.Pow(
			sym.Add(sym.Int(1), sym.Div(sym.Pow(z, sym.Int(2)), t.nu)),
			sym.Mul(sym.Rat(-1, 2), nuPlusOne),
		),
	), nil
}

// Mean returns μ if ν > 1 is provable
func (t *UnivariateT) Mean() ([]sym.Expr, error) {
	if sym.IsPositive(sym.Sub(t.nu, sym.Int(1))) != sym.True {
		return nil, fmt.Errorf("mean: nu = %v: %w", t.nu, ErrUndefined)
	}
	return []sym.Expr{t.mu}, nil
}
