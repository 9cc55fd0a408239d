package distribution

import (
	"errors"
	"math"
	"testing"

	"github.com/samuelfneumann/symdist/sym"
	"gonum.org/v1/gonum/stat/distuv"
)

func newTestNormalGamma(t *testing.T) *NormalGamma {
	t.Helper()
	ng, err := NewNormalGamma(sym.Int(1), sym.Int(2), sym.Int(3), sym.Int(4))
	if err != nil {
		t.Fatal(err)
	}
	return ng
}

func TestNormalGammaPDFExact(t *testing.T) {
	ng := newTestNormalGamma(t)

	got, err := ng.PDF(ints(1, 1)...)
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Mul(sym.Int(32), sym.Exp(sym.Int(-4)),
		sym.Pow(sym.Sqrt(sym.Pi), sym.Int(-1)))
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

func TestNormalGammaNormalised(t *testing.T) {
	const threshold float64 = 1e-6

	ng := newTestNormalGamma(t)
	l, err := Lambda(ng, symbols("x", 2))
	if err != nil {
		t.Fatal(err)
	}
	f := numeric(t, l)

	total := integrateReal(func(x float64) float64 {
		return integratePositive(func(tau float64) float64 { return f(x, tau) })
	})
	if math.Abs(total-1) > threshold {
		t.Errorf("density should integrate to 1 but got %v", total)
	}
}

func TestNormalGammaMarginalX(t *testing.T) {
	const threshold float64 = 1e-9
	ng := newTestNormalGamma(t)

	l, err := ng.Marginal([]int{0}, symbols("x", 1))
	if err != nil {
		t.Fatal(err)
	}
	got, err := l.Call(sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Div(
		sym.Mul(sym.Int(3), sym.Sqrt(sym.Int(10)), sym.Gamma(sym.Rat(7, 4))),
		sym.Mul(sym.Int(10), sym.Sqrt(sym.Pi), sym.Gamma(sym.Rat(5, 4))),
	)
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	// Student's t with ν = α - ½, μ and σ = β/(λα)
	f := numeric(t, l)
	target := distuv.StudentsT{Mu: 1, Sigma: 2.0 / 3, Nu: 2.5}
	for _, x := range []float64{-3, 0, 0.5, 1, 4} {
		if got, want := f(x), target.Prob(x); math.Abs(got-want) > threshold {
			t.Errorf("incorrect marginal density at %v\nexpected: %v\n"+
				"received: %v", x, want, got)
		}
	}
}

func TestNormalGammaMarginalTau(t *testing.T) {
	const threshold float64 = 1e-9
	ng := newTestNormalGamma(t)

	l, err := ng.Marginal([]int{1}, symbols("tau", 1))
	if err != nil {
		t.Fatal(err)
	}
	f := numeric(t, l)
	target := distuv.Gamma{Alpha: 3, Beta: 4}
	for _, tau := range []float64{0.1, 0.5, 1, 2, 5} {
		if got, want := f(tau), target.Prob(tau); math.Abs(got-want) > threshold {
			t.Errorf("incorrect marginal density at %v\nexpected: %v\n"+
				"received: %v", tau, want, got)
		}
	}
}

func TestNormalGammaMarginalJoint(t *testing.T) {
	ng := newTestNormalGamma(t)
	syms := symbols("x", 2)

	got, err := ng.Marginal([]int{1, 0}, syms)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Lambda(ng, syms)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	if _, err := ng.Marginal([]int{2}, symbols("x", 1)); !errors.Is(err, ErrIndex) {
		t.Errorf("expected ErrIndex but got %v", err)
	}
}

func TestNormalGammaInvalid(t *testing.T) {
	lambda := sym.NewSymbol("lambda")
	tests := []struct {
		name                    string
		mu, lambda, alpha, beta sym.Expr
		reason                  Reason
	}{
		{"negative beta", sym.Int(1), sym.Int(2), sym.Int(3), sym.Int(-1),
			NotPositive},
		{"zero alpha", sym.Int(1), sym.Int(2), sym.Int(0), sym.Int(4),
			NotPositive},
		{"symbolic lambda", sym.Int(1), lambda, sym.Int(3), sym.Int(4),
			NotPositive},
		{"imaginary mu", sym.I, sym.Int(2), sym.Int(3), sym.Int(4), NotReal},
	}

	for _, test := range tests {
		_, err := NewNormalGamma(test.mu, test.lambda, test.alpha, test.beta)
		if ipe := asInvalid(t, err); ipe.Reason != test.reason {
			t.Errorf("%s: expected reason %v but got %v", test.name,
				test.reason, ipe.Reason)
		}
	}

	// Symbols known to be positive are accepted
	a := sym.NewSymbol("a", sym.Positive)
	b := sym.NewSymbol("b", sym.Positive)
	l := sym.NewSymbol("l", sym.Positive)
	mu := sym.NewSymbol("mu", sym.Real)
	if _, err := NewNormalGamma(mu, l, a, b); err != nil {
		t.Errorf("positive symbols should be accepted: %v", err)
	}
}

func TestNormalGammaAccessors(t *testing.T) {
	ng := newTestNormalGamma(t)

	want := Product(RealLine, NonNegative)
	if !ng.Set().Equal(want) {
		t.Errorf("expected support %v but got %v", want, ng.Set())
	}
	if ng.Dim() != 2 || !ng.IsContinuous() || ng.Kind() != KindNormalGamma {
		t.Errorf("unexpected dimension %v, continuity %v or kind %v",
			ng.Dim(), ng.IsContinuous(), ng.Kind())
	}

	mean, err := ng.Mean()
	if err != nil {
		t.Fatal(err)
	}
	if !mean[0].Equal(sym.Int(1)) || !mean[1].Equal(sym.Rat(3, 4)) {
		t.Errorf("expected mean [1 3/4] but got %v", mean)
	}
}
