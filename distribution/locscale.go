package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// locScale holds the location vector and scale matrix shared by the
// elliptical distributions
type locScale struct {
	mu    []sym.Expr
	sigma *sym.Matrix
}

func newLocScale(mu []sym.Expr, sigma *sym.Matrix) locScale {
	return locScale{mu: append([]sym.Expr(nil), mu...), sigma: sigma}
}

// Mu returns the location vector
func (l locScale) Mu() []sym.Expr { return append([]sym.Expr(nil), l.mu...) }

// Sigma returns the scale matrix
func (l locScale) Sigma() *sym.Matrix { return l.sigma }

func (l locScale) Dim() int           { return len(l.mu) }
func (l locScale) Set() Set           { return Reals(len(l.mu)) }
func (l locScale) IsContinuous() bool { return true }

// reduce keeps only the components at the normalised indices, building
// the reduced location and scale in a single pass
func (l locScale) reduce(indices []int) (locScale, error) {
	sigma, err := l.sigma.Select(indices)
	if err != nil {
		return locScale{}, fmt.Errorf("reduce: %w", err)
	}
	return locScale{mu: selectVec(l.mu, indices), sigma: sigma}, nil
}

// quadratic returns (x - μ)ᵀ Σ⁻¹ (x - μ), the inverse and the
// determinant of Σ
func (l locScale) quadratic(x []sym.Expr) (sym.Expr, *sym.Matrix, sym.Expr,
	error) {
	inv, err := l.sigma.Inverse()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("quadratic: %w", err)
	}
	det, err := l.sigma.Det()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("quadratic: %w", err)
	}
	d := subVec(x, l.mu)
	q, err := inv.Bilinear(d, d)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("quadratic: %w", err)
	}
	return q, inv, det, nil
}

// marginal returns the density of the reduced distribution built by
// rebuild over syms
func (l locScale) marginal(indices []int, syms []*sym.Symbol,
	rebuild func(locScale) Distribution) (*sym.Lambda, error) {
	idx, err := normaliseIndices(indices, len(l.mu))
	if err != nil {
		return nil, fmt.Errorf("marginal: %w", err)
	}
	reduced, err := l.reduce(idx)
	if err != nil {
		return nil, fmt.Errorf("marginal: %w", err)
	}
	return Lambda(rebuild(reduced), syms)
}
