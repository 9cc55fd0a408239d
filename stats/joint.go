package stats

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/symdist/distribution"
	"github.com/samuelfneumann/symdist/sym"
)

// JointRV declares a random variable named name distributed according
// to d. The parameters of d are checked again under opts and the
// configured default policy.
func JointRV(name string, d distribution.Distribution,
	opts ...distribution.Option) (*RandomSymbol, error) {
	if err := d.Check(withDefaults(opts)...); err != nil {
		return nil, errors.Wrapf(err, "jointRV %s", name)
	}
	ps, err := newJointPSpace(name, d)
	if err != nil {
		return nil, errors.Wrapf(err, "jointRV %s", name)
	}
	return ps.Value(), nil
}

// MultivariateNormal declares a random variable with a multivariate
// normal distribution. mu is any vector accepted by sym.SympifyVector
// and sigma any matrix accepted by sym.SympifyMatrix.
func MultivariateNormal(name string, mu, sigma interface{},
	opts ...distribution.Option) (*RandomSymbol, error) {
	m, s, err := sympifyLocScale(mu, sigma)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateNormal %s", name)
	}
	d, err := distribution.NewNormal(m, s, withDefaults(opts)...)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateNormal %s", name)
	}
	return declare(name, d)
}

// MultivariateLaplace declares a random variable with an asymmetric
// multivariate Laplace distribution
func MultivariateLaplace(name string, mu, sigma interface{},
	opts ...distribution.Option) (*RandomSymbol, error) {
	m, s, err := sympifyLocScale(mu, sigma)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateLaplace %s", name)
	}
	d, err := distribution.NewLaplace(m, s, withDefaults(opts)...)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateLaplace %s", name)
	}
	return declare(name, d)
}

// MultivariateT declares a random variable with a multivariate
// Student's t distribution with nu degrees of freedom
func MultivariateT(name string, mu, sigma, nu interface{},
	opts ...distribution.Option) (*RandomSymbol, error) {
	m, s, err := sympifyLocScale(mu, sigma)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateT %s", name)
	}
	n, err := sym.Sympify(nu)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateT %s: nu", name)
	}
	d, err := distribution.NewStudentT(m, s, n, withDefaults(opts)...)
	if err != nil {
		return nil, errors.Wrapf(err, "multivariateT %s", name)
	}
	return declare(name, d)
}

// NormalGamma declares a bivariate random variable (x, τ) with a
// normal-gamma distribution
func NormalGamma(name string, mu, lambda, alpha, beta interface{},
	opts ...distribution.Option) (*RandomSymbol, error) {
	params := make([]sym.Expr, 4)
	for i, v := range []interface{}{mu, lambda, alpha, beta} {
		p, err := sym.Sympify(v)
		if err != nil {
			return nil, errors.Wrapf(err, "normalGamma %s: parameter %d",
				name, i)
		}
		params[i] = p
	}
	d, err := distribution.NewNormalGamma(params[0], params[1], params[2],
		params[3], withDefaults(opts)...)
	if err != nil {
		return nil, errors.Wrapf(err, "normalGamma %s", name)
	}
	return declare(name, d)
}

func declare(name string, d distribution.Distribution) (*RandomSymbol,
	error) {
	ps, err := newJointPSpace(name, d)
	if err != nil {
		return nil, err
	}
	return ps.Value(), nil
}

func sympifyLocScale(mu, sigma interface{}) ([]sym.Expr, *sym.Matrix,
	error) {
	m, err := sym.SympifyVector(mu)
	if err != nil {
		return nil, nil, errors.Wrap(err, "mu")
	}
	s, err := sym.SympifyMatrix(sigma)
	if err != nil {
		return nil, nil, errors.Wrap(err, "sigma")
	}
	return m, s, nil
}
