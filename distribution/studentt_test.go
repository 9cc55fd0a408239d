package distribution

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"

	expRand "golang.org/x/exp/rand"

	"github.com/samuelfneumann/symdist/sym"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestStudentTPDFExact(t *testing.T) {
	st, err := NewStudentT(ints(0, 0), sym.Identity(2), sym.Int(2))
	if err != nil {
		t.Fatal(err)
	}
	got, err := st.PDF(ints(1, 1)...)
	if err != nil {
		t.Fatal(err)
	}
	if want := sym.Div(sym.Int(1), sym.Mul(sym.Int(8), sym.Pi)); !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	x := sym.NewSymbol("x")
	y := sym.NewSymbol("y")
	sigma, err := sym.NewMatrix([][]sym.Expr{{x, sym.Int(0)}, {sym.Int(0), y}})
	if err != nil {
		t.Fatal(err)
	}
	st, err = NewStudentT(ints(1, 2), sigma, sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	got, err = st.PDF(ints(1, 2)...)
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Mul(
		sym.Rat(1, 2),
		sym.Pow(sym.Pi, sym.Int(-1)),
		sym.Pow(sym.Sqrt(sym.Mul(x, y)), sym.Int(-1)),
	)
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

// TestStudentTPDF compares the symbolic density against gonum's
// multivariate Student's t on random parameters and points
func TestStudentTPDF(t *testing.T) {
	const threshold float64 = 1e-9
	const tests int = 20
	const maxDims int = 3
	const maxNu int = 6
	rand.Seed(time.Now().UnixNano())
	src := expRand.NewSource(uint64(time.Now().UnixNano()))

	for i := 0; i < tests; i++ {
		k := 1 + rand.Intn(maxDims)
		nu := 1 + rand.Intn(maxNu)
		sigma, sigmaF := randomSPD(t, k)

		muF := make([]float64, k)
		mu := make([]sym.Expr, k)
		xF := make([]float64, k)
		x := make([]sym.Expr, k)
		for j := 0; j < k; j++ {
			muF[j], mu[j] = randomRat(2)
			xF[j], x[j] = randomRat(4)
		}

		target, ok := distmv.NewStudentsT(muF, sigmaF, float64(nu), src)
		if !ok {
			t.Fatalf("could not construct target distribution with sigma %v",
				sigmaF)
		}

		st, err := NewStudentT(mu, sigma, sym.Int(int64(nu)))
		if err != nil {
			t.Fatal(err)
		}
		pdf, err := st.PDF(x...)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := pdf.Evalf(nil)
		if !ok {
			t.Fatalf("could not evaluate %v", pdf)
		}

		want := math.Exp(target.LogProb(xF))
		if math.Abs(got-want) > threshold*math.Max(1, want) {
			t.Errorf("incorrect density at %v with nu = %v\nexpected: %v\n"+
				"received: %v", xF, nu, want, got)
		}
	}
}

func TestStudentTNormalised(t *testing.T) {
	const threshold float64 = 1e-4

	st, err := NewStudentT(ints(0, 0), sym.Identity(2), sym.Int(2))
	if err != nil {
		t.Fatal(err)
	}
	l, err := Lambda(st, symbols("x", 2))
	if err != nil {
		t.Fatal(err)
	}
	f := numeric(t, l)

	total := integrateReal(func(x float64) float64 {
		return integrateReal(func(y float64) float64 { return f(x, y) })
	})
	if math.Abs(total-1) > threshold {
		t.Errorf("density should integrate to 1 but got %v", total)
	}
}

func TestStudentTMarginal(t *testing.T) {
	const threshold float64 = 1e-9

	sigma := intMatrix(t, [][]int64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}})
	st, err := NewStudentT(ints(1, 2, 3), sigma, sym.Int(3))
	if err != nil {
		t.Fatal(err)
	}

	l, err := st.Marginal([]int{0}, symbols("x", 1))
	if err != nil {
		t.Fatal(err)
	}
	f := numeric(t, l)
	target := distuv.StudentsT{Mu: 1, Sigma: 1, Nu: 3}
	for _, x := range []float64{-2, 0, 1, 2.5, 7} {
		if got, want := f(x), target.Prob(x); math.Abs(got-want) > threshold {
			t.Errorf("incorrect marginal density at %v\nexpected: %v\n"+
				"received: %v", x, want, got)
		}
	}

	l, err = st.Marginal([]int{1, 2}, symbols("x", 2))
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := NewStudentT(ints(2, 3),
		intMatrix(t, [][]int64{{2, 0}, {0, 3}}), sym.Int(3))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Lambda(reduced, symbols("x", 2))
	if err != nil {
		t.Fatal(err)
	}
	if !l.Equal(want) {
		t.Errorf("expected %v but got %v", want, l)
	}
}

func TestStudentTInvalid(t *testing.T) {
	_, err := NewStudentT(ints(0, 0), intMatrix(t, [][]int64{{1, 1}, {1, -1}}),
		sym.Int(2))
	if ipe := asInvalid(t, err); ipe.Reason != NotPositiveDefinite {
		t.Errorf("expected reason %v but got %v", NotPositiveDefinite,
			ipe.Reason)
	}

	_, err = NewStudentT(ints(0), sym.Identity(2), sym.Int(2))
	if ipe := asInvalid(t, err); ipe.Reason != DimensionMismatch {
		t.Errorf("expected reason %v but got %v", DimensionMismatch,
			ipe.Reason)
	}

	for _, nu := range []sym.Expr{sym.Int(0), sym.Int(-1)} {
		_, err = NewStudentT(ints(0), sym.Identity(1), nu)
		if ipe := asInvalid(t, err); ipe.Reason != NotPositive {
			t.Errorf("nu = %v: expected reason %v but got %v", nu,
				NotPositive, ipe.Reason)
		}
	}

	nu := sym.NewSymbol("nu")
	if _, err := NewStudentT(ints(0), sym.Identity(1), nu); err != nil {
		t.Errorf("symbolic degrees of freedom should be accepted: %v", err)
	}
	_, err = NewStudentT(ints(0), sym.Identity(1), nu, WithIndeterminate(Reject))
	if ipe := asInvalid(t, err); ipe.Reason != NotPositive {
		t.Errorf("expected reason %v but got %v", NotPositive, ipe.Reason)
	}
}

func TestStudentTMean(t *testing.T) {
	st, err := NewStudentT(ints(1, 2), sym.Identity(2), sym.Int(2))
	if err != nil {
		t.Fatal(err)
	}
	mean, err := st.Mean()
	if err != nil {
		t.Fatal(err)
	}
	if !mean[0].Equal(sym.Int(1)) || !mean[1].Equal(sym.Int(2)) {
		t.Errorf("expected mean [1 2] but got %v", mean)
	}

	cauchy, err := NewStudentT(ints(0), sym.Identity(1), sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cauchy.Mean(); !errors.Is(err, ErrUndefined) {
		t.Errorf("expected ErrUndefined but got %v", err)
	}
}
