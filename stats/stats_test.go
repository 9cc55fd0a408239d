package stats

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samuelfneumann/symdist/distribution"
	"github.com/samuelfneumann/symdist/sym"
)

func TestMultivariateNormal(t *testing.T) {
	rv, err := MultivariateNormal("X", []int{1, 2}, [][]int{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, s := range rv.PSpace().Symbols() {
		names = append(names, s.Name())
	}
	if diff := cmp.Diff([]string{"X[0]", "X[1]"}, names); diff != "" {
		t.Errorf("unexpected component symbols (-want +got):\n%s", diff)
	}
	if rv.Name() != "X" || rv.PSpace().ComponentCount() != 2 {
		t.Errorf("unexpected name %v or component count %v", rv.Name(),
			rv.PSpace().ComponentCount())
	}

	density, err := Density(rv)
	if err != nil {
		t.Fatal(err)
	}
	got, err := density.Call(1, "2")
	if err != nil {
		t.Fatal(err)
	}
	if want := sym.Div(sym.Int(1), sym.Mul(sym.Int(2), sym.Pi)); !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	marginal, err := MarginalDistribution(rv, rv.Index(0))
	if err != nil {
		t.Fatal(err)
	}
	got, err = marginal.Call(sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if want := sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Rat(-1, 2)); !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
	if !marginal.Params()[0].Equal(rv.Index(0)) {
		t.Errorf("marginal should be a function of %v but got %v",
			rv.Index(0), marginal.Params())
	}
}

func TestMultivariateLaplace(t *testing.T) {
	rv, err := MultivariateLaplace("L", []int{1, 0}, [][]int{{1, 2}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	density, err := Density(rv)
	if err != nil {
		t.Fatal(err)
	}
	got, err := density.Call(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Mul(
		sym.Exp(sym.Int(2)),
		sym.BesselK(sym.Int(0), sym.Sqrt(sym.Int(3))),
		sym.Pow(sym.Pi, sym.Int(-1)),
	)
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

func TestMultivariateT(t *testing.T) {
	rv, err := MultivariateT("T", []int{0, 0}, [][]int{{1, 0}, {0, 1}}, 2)
	if err != nil {
		t.Fatal(err)
	}
	density, err := Density(rv)
	if err != nil {
		t.Fatal(err)
	}
	got, err := density.Call(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := sym.Div(sym.Int(1), sym.Mul(sym.Int(8), sym.Pi)); !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}
}

func TestNormalGamma(t *testing.T) {
	rv, err := NormalGamma("N", 1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	density, err := Density(rv)
	if err != nil {
		t.Fatal(err)
	}
	got, err := density.Call(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Mul(sym.Int(32), sym.Exp(sym.Int(-4)),
		sym.Pow(sym.Sqrt(sym.Pi), sym.Int(-1)))
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	marginal, err := MarginalDistribution(rv, 0)
	if err != nil {
		t.Fatal(err)
	}
	got, err = marginal.Call(sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	want = sym.Div(
		sym.Mul(sym.Int(3), sym.Sqrt(sym.Int(10)), sym.Gamma(sym.Rat(7, 4))),
		sym.Mul(sym.Int(10), sym.Sqrt(sym.Pi), sym.Gamma(sym.Rat(5, 4))),
	)
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	mean, err := Mean(rv)
	if err != nil {
		t.Fatal(err)
	}
	if !mean[1].Equal(sym.Rat(3, 4)) {
		t.Errorf("expected mean of tau 3/4 but got %v", mean[1])
	}
}

func TestInvalid(t *testing.T) {
	mixed := [][]int{{1, 1}, {1, -1}}
	declarations := map[string]func() (*RandomSymbol, error){
		"normal": func() (*RandomSymbol, error) {
			return MultivariateNormal("X", []int{0, 0}, mixed)
		},
		"laplace": func() (*RandomSymbol, error) {
			return MultivariateLaplace("X", []int{0, 0}, mixed)
		},
		"t": func() (*RandomSymbol, error) {
			return MultivariateT("X", []int{0, 0}, mixed, 2)
		},
		"dimension": func() (*RandomSymbol, error) {
			return MultivariateNormal("X", []int{0}, [][]int{{1, 0}, {0, 1}})
		},
		"normal gamma": func() (*RandomSymbol, error) {
			return NormalGamma("X", 1, 2, 3, -1)
		},
		"symbolic singular": func() (*RandomSymbol, error) {
			return MultivariateNormal("X", []int{0, 0},
				[][]string{{"x", "x"}, {"x", "x"}},
				distribution.WithIndeterminate(distribution.Accept))
		},
	}

	for name, declare := range declarations {
		rv, err := declare()
		if rv != nil {
			t.Errorf("%s: invalid declaration returned a random variable",
				name)
		}
		if !errors.Is(err, distribution.ErrInvalidParameter) {
			t.Errorf("%s: expected ErrInvalidParameter but got %v", name, err)
		}
		var ipe *distribution.InvalidParameterError
		if !errors.As(err, &ipe) || ipe.Msg == "" {
			t.Errorf("%s: expected an explanation but got %v", name, err)
		}
	}

	if _, err := MultivariateNormal("X", []int{0}, [][]int{{1}, {1, 2}}); !errors.Is(err, sym.ErrSympify) {
		t.Errorf("expected ErrSympify but got %v", err)
	}
	if _, err := MultivariateNormal("", []int{0}, [][]int{{1}}); err == nil {
		t.Error("expected an error for an unnamed random variable")
	}
}

func TestMarginalDistributionErrors(t *testing.T) {
	rv, err := MultivariateNormal("X", []int{1, 2}, [][]int{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := MarginalDistribution(rv); !errors.Is(err, distribution.ErrArity) {
		t.Errorf("expected ErrArity but got %v", err)
	}
	if _, err := MarginalDistribution(rv, 2); !errors.Is(err, distribution.ErrIndex) {
		t.Errorf("expected ErrIndex but got %v", err)
	}
	if _, err := MarginalDistribution(rv, sym.NewSymbol("Y[0]")); !errors.Is(err, distribution.ErrIndex) {
		t.Errorf("expected ErrIndex but got %v", err)
	}
	if _, err := MarginalDistribution(rv, "0"); err == nil {
		t.Error("expected an error for a string index")
	}

	g, err := distribution.NewGamma(sym.Int(2), sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	gv, err := JointRV("G", g)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := MarginalDistribution(gv, 0); !errors.Is(err, distribution.ErrMarginalUnsupported) {
		t.Errorf("expected ErrMarginalUnsupported but got %v", err)
	}
}

func TestIndexPanics(t *testing.T) {
	rv, err := MultivariateNormal("X", []int{1}, [][]int{{1}})
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an out of range component")
		}
	}()
	rv.Index(1)
}
