package sym

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is an immutable dense matrix of expressions
type Matrix struct {
	rows, cols int
	data       []Expr
}

// NewMatrix returns a matrix with the given rows. All rows must have
// the same length.
func NewMatrix(rows [][]Expr) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	c := len(rows[0])
	data := make([]Expr, 0, len(rows)*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("newMatrix: row %d has length %d, "+
				"expected %d: %w", i, len(row), c, ErrShape)
		}
		data = append(data, row...)
	}
	return &Matrix{rows: len(rows), cols: c, data: data}, nil
}

// NewDense returns an r x c matrix backed by data in row major order.
// NewDense panics if len(data) != r*c.
func NewDense(r, c int, data []Expr) *Matrix {
	if len(data) != r*c {
		panic(fmt.Sprintf("newDense: data has length %d, expected %d",
			len(data), r*c))
	}
	return &Matrix{rows: r, cols: c, data: append([]Expr(nil), data...)}
}

// ColVector returns v as a column vector
func ColVector(v []Expr) *Matrix {
	return NewDense(len(v), 1, v)
}

// Identity returns the n x n identity matrix
func Identity(n int) *Matrix {
	data := make([]Expr, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = one
			} else {
				data[i*n+j] = zero
			}
		}
	}
	return &Matrix{rows: n, cols: n, data: data}
}

// At returns the element at row i and column j
func (m *Matrix) At(i, j int) Expr {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("at: index (%d, %d) out of range for %dx%d matrix",
			i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Dims returns the number of rows and columns
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }
func (m *Matrix) Rows() int        { return m.rows }
func (m *Matrix) Cols() int        { return m.cols }
func (m *Matrix) IsSquare() bool   { return m.rows == m.cols }

// Row returns a copy of row i
func (m *Matrix) Row(i int) []Expr {
	return append([]Expr(nil), m.data[i*m.cols:(i+1)*m.cols]...)
}

// Col returns a copy of column j
func (m *Matrix) Col(j int) []Expr {
	out := make([]Expr, m.rows)
	for i := range out {
		out[i] = m.At(i, j)
	}
	return out
}

// T returns the transpose of m
func (m *Matrix) T() *Matrix {
	out := make([]Expr, len(m.data))
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[j*m.rows+i] = m.At(i, j)
		}
	}
	return &Matrix{rows: m.cols, cols: m.rows, data: out}
}

// Add returns m + o
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.elementwise(o, "add", func(a, b Expr) Expr { return Add(a, b) })
}

// Sub returns m - o
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) {
	return m.elementwise(o, "sub", Sub)
}

func (m *Matrix) elementwise(o *Matrix, name string,
	f func(a, b Expr) Expr) (*Matrix, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, fmt.Errorf("%s: cannot combine %dx%d and %dx%d: %w",
			name, m.rows, m.cols, o.rows, o.cols, ErrShape)
	}
	out := make([]Expr, len(m.data))
	for i := range out {
		out[i] = f(m.data[i], o.data[i])
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}, nil
}

// Mul returns the matrix product m·o
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("mul: cannot multiply %dx%d by %dx%d: %w",
			m.rows, m.cols, o.rows, o.cols, ErrShape)
	}
	out := make([]Expr, m.rows*o.cols)
	terms := make([]Expr, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			for k := 0; k < m.cols; k++ {
				terms[k] = Mul(m.At(i, k), o.At(k, j))
			}
			out[i*o.cols+j] = Add(terms...)
		}
	}
	return &Matrix{rows: m.rows, cols: o.cols, data: out}, nil
}

// Scale returns e·m
func (m *Matrix) Scale(e Expr) *Matrix {
	out := make([]Expr, len(m.data))
	for i, v := range m.data {
		out[i] = Mul(e, v)
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: out}
}

// Bilinear returns xᵀ·m·y
func (m *Matrix) Bilinear(x, y []Expr) (Expr, error) {
	if len(x) != m.rows || len(y) != m.cols {
		return nil, fmt.Errorf("bilinear: vectors of length %d and %d "+
			"incompatible with %dx%d matrix: %w", len(x), len(y), m.rows,
			m.cols, ErrShape)
	}
	terms := make([]Expr, 0, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			terms = append(terms, Mul(x[i], m.At(i, j), y[j]))
		}
	}
	return Add(terms...), nil
}

// DeleteRow returns m without row i
func (m *Matrix) DeleteRow(i int) *Matrix {
	keep := make([]int, 0, m.rows)
	for r := 0; r < m.rows; r++ {
		if r != i {
			keep = append(keep, r)
		}
	}
	return m.sub(keep, seq(m.cols))
}

// DeleteCol returns m without column j
func (m *Matrix) DeleteCol(j int) *Matrix {
	keep := make([]int, 0, m.cols)
	for c := 0; c < m.cols; c++ {
		if c != j {
			keep = append(keep, c)
		}
	}
	return m.sub(seq(m.rows), keep)
}

// Select returns the submatrix made of the given rows and the same
// columns, in the order given. The result is built in a single pass,
// so indices always refer to positions in m.
func (m *Matrix) Select(indices []int) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("select: %dx%d matrix is not square: %w",
			m.rows, m.cols, ErrShape)
	}
	for _, i := range indices {
		if i < 0 || i >= m.rows {
			return nil, fmt.Errorf("select: index %d out of range [0, %d): %w",
				i, m.rows, ErrShape)
		}
	}
	return m.sub(indices, indices), nil
}

func (m *Matrix) sub(rows, cols []int) *Matrix {
	out := make([]Expr, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			out = append(out, m.At(r, c))
		}
	}
	return &Matrix{rows: len(rows), cols: len(cols), data: out}
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// IsSymmetric returns whether m is square and structurally equal to
// its transpose
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if !m.At(i, j).Equal(m.At(j, i)) {
				return false
			}
		}
	}
	return true
}

// Subs applies Subs to every element
func (m *Matrix) Subs(env map[string]Expr) *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: subsAll(m.data, env)}
}

// Equal returns whether m and o have the same shape and structurally
// equal elements
func (m *Matrix) Equal(o *Matrix) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}

func (m *Matrix) String() string {
	rows := make([]string, m.rows)
	for i := range rows {
		elems := make([]string, m.cols)
		for j := range elems {
			elems[j] = m.At(i, j).String()
		}
		rows[i] = "[" + strings.Join(elems, ", ") + "]"
	}
	return "Matrix([" + strings.Join(rows, ", ") + "])"
}

// rats returns the elements of m as rationals if they are all numbers
func (m *Matrix) rats() ([]*big.Rat, bool) {
	out := make([]*big.Rat, len(m.data))
	for i, e := range m.data {
		n, ok := e.(*Num)
		if !ok {
			return nil, false
		}
		out[i] = n.BigRat()
	}
	return out, true
}

// Det returns the determinant of m. Numeric matrices are reduced by
// exact Gaussian elimination, other matrices by cofactor expansion.
func (m *Matrix) Det() (Expr, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("det: %dx%d matrix is not square: %w",
			m.rows, m.cols, ErrShape)
	}
	if r, ok := m.rats(); ok {
		return newNum(ratDet(r, m.rows)), nil
	}
	return m.cofactorDet(), nil
}

func ratDet(a []*big.Rat, n int) *big.Rat {
	det := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for c := 0; c < n; c++ {
		p := -1
		for r := c; r < n; r++ {
			if a[r*n+c].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return new(big.Rat)
		}
		if p != c {
			for k := 0; k < n; k++ {
				a[p*n+k], a[c*n+k] = a[c*n+k], a[p*n+k]
			}
			det.Neg(det)
		}
		pivot := a[c*n+c]
		det.Mul(det, pivot)
		for r := c + 1; r < n; r++ {
			if a[r*n+c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[r*n+c], pivot)
			for k := c; k < n; k++ {
				a[r*n+k].Sub(a[r*n+k], tmp.Mul(f, a[c*n+k]))
			}
		}
	}
	return det
}

func (m *Matrix) cofactorDet() Expr {
	switch m.rows {
	case 0:
		return one
	case 1:
		return m.data[0]
	case 2:
		return Sub(Mul(m.data[0], m.data[3]), Mul(m.data[1], m.data[2]))
	}

	// Expand along the row with the most zeros
	best, bestZeros := 0, -1
	for i := 0; i < m.rows; i++ {
		z := 0
		for j := 0; j < m.cols; j++ {
			if n, ok := m.At(i, j).(*Num); ok && n.IsZero() {
				z++
			}
		}
		if z > bestZeros {
			best, bestZeros = i, z
		}
	}

	terms := make([]Expr, 0, m.cols)
	for j := 0; j < m.cols; j++ {
		a := m.At(best, j)
		if n, ok := a.(*Num); ok && n.IsZero() {
			continue
		}
		minor := m.DeleteRow(best).DeleteCol(j).cofactorDet()
		if (best+j)%2 == 1 {
			a = Neg(a)
		}
		terms = append(terms, Mul(a, minor))
	}
	return Add(terms...)
}

// Inverse returns the inverse of m. ErrSingular is returned if the
// determinant of m is provably zero.
func (m *Matrix) Inverse() (*Matrix, error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("inverse: %dx%d matrix is not square: %w",
			m.rows, m.cols, ErrShape)
	}
	if r, ok := m.rats(); ok {
		inv, ok := ratInverse(r, m.rows)
		if !ok {
			return nil, fmt.Errorf("inverse: %w", ErrSingular)
		}
		data := make([]Expr, len(inv))
		for i, v := range inv {
			data[i] = newNum(v)
		}
		return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
	}

	det := m.cofactorDet()
	if n, ok := det.(*Num); ok && n.IsZero() {
		return nil, fmt.Errorf("inverse: %w", ErrSingular)
	}
	invDet := Pow(det, negOne)

	n := m.rows
	data := make([]Expr, n*n)
	if n == 1 {
		data[0] = invDet
		return &Matrix{rows: 1, cols: 1, data: data}, nil
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// adj(m)[i][j] is the (j, i) cofactor
			c := m.DeleteRow(j).DeleteCol(i).cofactorDet()
			if (i+j)%2 == 1 {
				c = Neg(c)
			}
			data[i*n+j] = Mul(c, invDet)
		}
	}
	return &Matrix{rows: n, cols: n, data: data}, nil
}

// ratInverse inverts an n x n rational matrix by Gauss-Jordan
// elimination
func ratInverse(a []*big.Rat, n int) ([]*big.Rat, bool) {
	inv := make([]*big.Rat, n*n)
	for i := range inv {
		inv[i] = new(big.Rat)
	}
	for i := 0; i < n; i++ {
		inv[i*n+i].SetInt64(1)
	}

	tmp := new(big.Rat)
	for c := 0; c < n; c++ {
		p := -1
		for r := c; r < n; r++ {
			if a[r*n+c].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return nil, false
		}
		if p != c {
			for k := 0; k < n; k++ {
				a[p*n+k], a[c*n+k] = a[c*n+k], a[p*n+k]
				inv[p*n+k], inv[c*n+k] = inv[c*n+k], inv[p*n+k]
			}
		}

		pivot := new(big.Rat).Set(a[c*n+c])
		for k := 0; k < n; k++ {
			a[c*n+k].Quo(a[c*n+k], pivot)
			inv[c*n+k].Quo(inv[c*n+k], pivot)
		}

		for r := 0; r < n; r++ {
			if r == c || a[r*n+c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(a[r*n+c])
			for k := 0; k < n; k++ {
				a[r*n+k].Sub(a[r*n+k], tmp.Mul(f, a[c*n+k]))
				inv[r*n+k].Sub(inv[r*n+k], tmp.Mul(f, inv[c*n+k]))
			}
		}
	}
	return inv, true
}
