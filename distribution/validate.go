package distribution

import (
	"fmt"
	"sort"

	"github.com/samuelfneumann/symdist/sym"
)

// checkShape validates a location vector and a scale matrix:
// the matrix must be square with as many rows as the vector has
// components, and positive definite. Positive definiteness that can be
// neither proven nor disproven is handled by the configured policy.
func checkShape(k Kind, mu []sym.Expr, sigma *sym.Matrix, c config) error {
	if !sigma.IsSquare() {
		r, cols := sigma.Dims()
		return newInvalid(k, NotSquare, "shape matrix is %dx%d", r, cols)
	}
	if len(mu) != sigma.Rows() {
		return newInvalid(k, DimensionMismatch, "location has %d "+
			"components but shape matrix has %d rows", len(mu), sigma.Rows())
	}
	if len(mu) == 0 {
		return newInvalid(k, DimensionMismatch, "no components")
	}

	switch sym.PositiveDefinite(sigma) {
	case sym.False:
		return newInvalid(k, NotPositiveDefinite, "shape matrix %v has an "+
			"eigenvalue that is not positive", sigma)
	case sym.Indeterminate:
		if c.indeterminate == Reject {
			return newInvalid(k, NotPositiveDefinite, "shape matrix %v "+
				"could not be shown to be positive definite", sigma)
		}
		logger.WithField("kind", k).Debugf("accepting shape matrix %v "+
			"of undecidable definiteness", sigma)
	}
	return nil
}

// checkPositive requires e to be provably positive
func checkPositive(k Kind, name string, e sym.Expr) error {
	if sym.IsPositive(e) != sym.True {
		return newInvalid(k, NotPositive, "%s = %v must be positive", name, e)
	}
	return nil
}

// checkNotNonPositive rejects e only if it is provably not positive.
// Undecidable values are handled by the configured policy.
func checkNotNonPositive(k Kind, name string, e sym.Expr, c config) error {
	switch sym.IsPositive(e) {
	case sym.False:
		return newInvalid(k, NotPositive, "%s = %v must be positive", name, e)
	case sym.Indeterminate:
		if c.indeterminate == Reject {
			return newInvalid(k, NotPositive, "%s = %v could not be "+
				"shown to be positive", name, e)
		}
	}
	return nil
}

// checkReal rejects e if it is provably not real. Undecidable values
// are handled by the configured policy.
func checkReal(k Kind, name string, e sym.Expr, c config) error {
	switch sym.IsReal(e) {
	case sym.False:
		return newInvalid(k, NotReal, "%s = %v must be real", name, e)
	case sym.Indeterminate:
		if c.indeterminate == Reject {
			return newInvalid(k, NotReal, "%s = %v could not be shown "+
				"to be real", name, e)
		}
	}
	return nil
}

// checkArgs verifies that a density receives one argument per
// component
func checkArgs(k Kind, dim int, args []sym.Expr) error {
	if len(args) != dim {
		return fmt.Errorf("%v: expected %d arguments but got %d: %w", k, dim,
			len(args), ErrArity)
	}
	return nil
}

// normaliseIndices returns the distinct indices in ascending order,
// verifying that each addresses one of dim components
func normaliseIndices(indices []int, dim int) ([]int, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("normaliseIndices: no indices: %w", ErrArity)
	}
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= dim {
			return nil, fmt.Errorf("normaliseIndices: index %d not in "+
				"[0, %d): %w", i, dim, ErrIndex)
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out, nil
}
