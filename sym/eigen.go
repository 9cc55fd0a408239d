package sym

import (
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"
)

// eigenSnap is the relative magnitude below which numerically computed
// eigenvalue components are snapped to zero
const eigenSnap = 1e-12

// Eigenvals returns the eigenvalues of a square matrix, with
// multiplicity. Eigenvalues are exact for triangular matrices and for
// matrices of size at most 2, where complex eigenvalues are expressed
// with I. Larger numeric matrices fall back to floating point
// eigenvalues. ErrNoClosedForm is returned for larger matrices with
// free symbols.
func (m *Matrix) Eigenvals() ([]Expr, error) {
	vals, _, err := m.eigenvals()
	return vals, err
}

// eigenvals returns the eigenvalues of m and whether they are exact
func (m *Matrix) eigenvals() ([]Expr, bool, error) {
	if !m.IsSquare() {
		return nil, false, fmt.Errorf("eigenvals: %dx%d matrix is not "+
			"square: %w", m.rows, m.cols, ErrShape)
	}
	n := m.rows

	if m.isTriangular() {
		vals := make([]Expr, n)
		for i := range vals {
			vals[i] = m.At(i, i)
		}
		return vals, true, nil
	}

	if n == 2 {
		// λ = tr/2 ± √(((a - d)/2)² + bc)
		a, b, c, d := m.data[0], m.data[1], m.data[2], m.data[3]
		mid := Mul(half, Add(a, d))
		disc := Add(Pow(Mul(half, Sub(a, d)), Int(2)), Mul(b, c))
		root := Sqrt(disc)
		return []Expr{Sub(mid, root), Add(mid, root)}, true, nil
	}

	if r, ok := m.rats(); ok {
		vals, err := numericEigenvals(r, n, m.IsSymmetric())
		if err != nil {
			return nil, false, err
		}
		logger.WithField("dims", n).Debug("using numeric eigenvalues")
		return vals, false, nil
	}

	return nil, false, fmt.Errorf("eigenvals: %dx%d symbolic matrix: %w",
		n, n, ErrNoClosedForm)
}

func (m *Matrix) isTriangular() bool {
	upper, lower := true, true
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if i == j {
				continue
			}
			if n, ok := m.At(i, j).(*Num); ok && n.IsZero() {
				continue
			}
			if i > j {
				upper = false
			} else {
				lower = false
			}
		}
	}
	return upper || lower
}

func numericEigenvals(r []*big.Rat, n int, symmetric bool) ([]Expr, error) {
	data := make([]float64, len(r))
	scale := 1.0
	for i, v := range r {
		data[i], _ = v.Float64()
		scale = math.Max(scale, math.Abs(data[i]))
	}
	tol := eigenSnap * scale

	if symmetric {
		var es mat.EigenSym
		if ok := es.Factorize(mat.NewSymDense(n, data), false); !ok {
			return nil, fmt.Errorf("numericEigenvals: symmetric "+
				"factorization failed: %w", ErrNoClosedForm)
		}
		vals := es.Values(nil)
		out := make([]Expr, len(vals))
		for i, v := range vals {
			out[i] = floatNum(v, tol)
		}
		return out, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenNone); !ok {
		return nil, fmt.Errorf("numericEigenvals: factorization failed: %w",
			ErrNoClosedForm)
	}
	vals := eig.Values(nil)
	out := make([]Expr, len(vals))
	for i, v := range vals {
		out[i] = Add(floatNum(real(v), tol), Mul(floatNum(imag(v), tol), I))
	}
	return out, nil
}

// floatNum converts f to the exact rational it represents, snapping
// magnitudes below tol to zero
func floatNum(f, tol float64) *Num {
	if math.Abs(f) <= tol {
		return Int(0)
	}
	return newNum(new(big.Rat).SetFloat64(f))
}

// PositiveDefinite returns whether every eigenvalue of m is provably a
// positive real number (True), some eigenvalue or the determinant is
// provably not (False), or neither could be decided (Indeterminate).
// Symmetric matrices whose eigenvalues have no exact form are decided
// by the signs of their leading principal minors.
func PositiveDefinite(m *Matrix) Truth {
	if !m.IsSquare() {
		return False
	}

	// The determinant is the product of the eigenvalues
	if det, err := m.Det(); err == nil && IsNonPositive(det) == True {
		return False
	}

	vals, exact, err := m.eigenvals()
	if (err != nil || !exact) && m.IsSymmetric() {
		return leadingMinors(m)
	}
	if err != nil {
		logger.WithError(err).Debug("positive definiteness undecided")
		return Indeterminate
	}

	t := True
	for _, v := range vals {
		switch IsPositive(v) {
		case False:
			return False
		case Indeterminate:
			t = Indeterminate
		}
	}
	return t
}

// leadingMinors applies Sylvester's criterion to a symmetric matrix
func leadingMinors(m *Matrix) Truth {
	t := True
	for k := 1; k <= m.rows; k++ {
		minor, err := m.Select(seq(k))
		if err != nil {
			return Indeterminate
		}
		det, err := minor.Det()
		if err != nil {
			return Indeterminate
		}
		switch IsPositive(det) {
		case False:
			return False
		case Indeterminate:
			t = Indeterminate
		}
	}
	return t
}
