package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// NormalGamma is the bivariate normal-gamma distribution of (x, τ),
// where τ is gamma distributed with shape α and rate β, and x given τ
// is normal with mean μ and precision λτ:
//
//		f(x, τ) = β^α √λ / (Γ(α) √(2π)) τ^(α-½) exp(-βτ) exp(-λτ(x-μ)²/2)
type NormalGamma struct {
	mu, lambda, alpha, beta sym.Expr
}

// NewNormalGamma returns a new NormalGamma. λ, α and β must be
// provably positive. μ is rejected if provably not real; a μ that
// cannot be shown to be real is handled by the Policy in opts.
func NewNormalGamma(mu, lambda, alpha, beta sym.Expr,
	opts ...Option) (*NormalGamma, error) {
	n := &NormalGamma{mu: mu, lambda: lambda, alpha: alpha, beta: beta}
	if err := n.Check(opts...); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *NormalGamma) Kind() Kind         { return KindNormalGamma }
func (n *NormalGamma) Dim() int           { return 2 }
func (n *NormalGamma) Set() Set           { return Product(RealLine, NonNegative) }
func (n *NormalGamma) IsContinuous() bool { return true }

func (n *NormalGamma) Params() []Param {
	return []Param{
		{"mu", n.mu},
		{"lambda", n.lambda},
		{"alpha", n.alpha},
		{"beta", n.beta},
	}
}

func (n *NormalGamma) Check(opts ...Option) error {
	if err := checkReal(KindNormalGamma, "mu", n.mu, newConfig(opts)); err != nil {
		return err
	}
	if err := checkPositive(KindNormalGamma, "lambda", n.lambda); err != nil {
		return err
	}
	if err := checkPositive(KindNormalGamma, "alpha", n.alpha); err != nil {
		return err
	}
	return checkPositive(KindNormalGamma, "beta", n.beta)
}

func (n *NormalGamma) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindNormalGamma, 2, args); err != nil {
		return nil, err
	}
	x, tau := args[0], args[1]
	half := sym.Rat(1, 2)

	return sym.Mul(
		sym.Pow(n.beta, n.alpha),
		sym.Sqrt(n.lambda),
		sym.Pow(sym.Gamma(n.alpha), sym.Int(-1)),
		sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Rat(-1, 2)),
		sym.Pow(tau, sym.Sub(n.alpha, half)),
		sym.Exp(sym.Neg(sym.Mul(n.beta, tau))),
		sym.Exp(sym.Mul(
			sym.Rat(-1, 2),
			n.lambda,
			tau,
			sym.Pow(sym.Sub(x, n.mu), sym.Int(2)),
		)),
	), nil
}

// Marginal returns the joint density when both components are
// requested. The marginal of x is a non-standardised Student's t with
// ν = α - ½, location μ and scale β/(λα). The marginal of τ is a
// gamma distribution with shape α and rate β.
func (n *NormalGamma) Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda,
	error) {
	idx, err := normaliseIndices(indices, 2)
	if err != nil {
		return nil, fmt.Errorf("marginal: %w", err)
	}

	var d Distribution
	switch {
	case len(idx) == 2:
		d = n
	case idx[0] == 0:
		d = n.marginalX()
	default:
		d = n.marginalTau()
	}
	return Lambda(d, syms)
}

func (n *NormalGamma) marginalX() *UnivariateT {
	return &UnivariateT{
		nu:    sym.Sub(n.alpha, sym.Rat(1, 2)),
		mu:    n.mu,
		sigma: sym.Div(n.beta, sym.Mul(n.lambda, n.alpha)),
	}
}

func (n *NormalGamma) marginalTau() *Gamma {
	return &Gamma{shape: n.alpha, rate: n.beta}
}

// Mean returns (μ, α/β)
func (n *NormalGamma) Mean() ([]sym.Expr, error) {
	return []sym.Expr{n.mu, sym.Div(n.alpha, n.beta)}, nil
}
