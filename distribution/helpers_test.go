package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/samuelfneumann/symdist/sym"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// quadPoints is the number of Gauss-Legendre nodes used on each half
// of an integration range
const quadPoints = 120

// integrateReal integrates f over the real line using the substitution
// x = tan θ, splitting the range at zero
func integrateReal(f func(float64) float64) float64 {
	g := func(theta float64) float64 {
		c := math.Cos(theta)
		return f(math.Tan(theta)) / (c * c)
	}
	return quad.Fixed(g, -math.Pi/2, 0, quadPoints, nil, 0) +
		quad.Fixed(g, 0, math.Pi/2, quadPoints, nil, 0)
}

// integratePositive integrates f over (0, ∞) using the substitution
// x = tan θ
func integratePositive(f func(float64) float64) float64 {
	g := func(theta float64) float64 {
		c := math.Cos(theta)
		return f(math.Tan(theta)) / (c * c)
	}
	return quad.Fixed(g, 0, math.Pi/2, 2*quadPoints, nil, 0)
}

// symbols returns n plain symbols named prefix0, prefix1, ...
func symbols(prefix string, n int) []*sym.Symbol {
	out := make([]*sym.Symbol, n)
	for i := range out {
		out[i] = sym.NewSymbol(fmt.Sprintf("%s%d", prefix, i))
	}
	return out
}

// numeric returns a function evaluating l at float arguments. The test
// fails if the density cannot be evaluated.
func numeric(t *testing.T, l *sym.Lambda) func(...float64) float64 {
	t.Helper()
	params := l.Params()
	body := l.Body()
	return func(x ...float64) float64 {
		env := make(map[string]float64, len(x))
		for i, p := range params {
			env[p.Name()] = x[i]
		}
		v, ok := body.Evalf(env)
		if !ok {
			t.Fatalf("could not evaluate %v at %v", body, x)
		}
		return v
	}
}

// ints converts integers to expressions
func ints(v ...int64) []sym.Expr {
	out := make([]sym.Expr, len(v))
	for i, x := range v {
		out[i] = sym.Int(x)
	}
	return out
}

// intMatrix returns a matrix of integers
func intMatrix(t *testing.T, rows [][]int64) *sym.Matrix {
	t.Helper()
	m, err := sym.SympifyMatrix(rows)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// randomSPD returns a random symmetric positive definite k x k integer
// matrix AAᵀ + I, both as a symbolic matrix and a gonum matrix
func randomSPD(t *testing.T, k int) (*sym.Matrix, *mat.SymDense) {
	t.Helper()
	a := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a.Set(i, j, float64(rand.Intn(5)-2))
		}
	}
	s := mat.NewSymDense(k, nil)
	s.SymOuterK(1, a)
	for i := 0; i < k; i++ {
		s.SetSym(i, i, s.At(i, i)+1)
	}

	m, err := sym.SympifyMatrix(s)
	if err != nil {
		t.Fatal(err)
	}
	return m, s
}

// randomRat returns a random rational in [-scale, scale] with
// denominator 8, as a float and an expression
func randomRat(scale int) (float64, sym.Expr) {
	n := int64(rand.Intn(16*scale+1) - 8*scale)
	return float64(n) / 8, sym.Rat(n, 8)
}

func asInvalid(t *testing.T, err error) *InvalidParameterError {
	t.Helper()
	var ipe *InvalidParameterError
	if err == nil {
		t.Fatal("expected an invalid parameter error but got nil")
	}
	if !errors.As(err, &ipe) {
		t.Fatalf("expected an invalid parameter error but got %v", err)
	}
	return ipe
}
