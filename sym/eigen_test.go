package sym

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func TestPositiveDefinite(t *testing.T) {
	x := NewSymbol("x")
	y := NewSymbol("y")
	a := NewSymbol("a", Positive)
	b := NewSymbol("b", Positive)

	tests := []struct {
		name string
		m    *Matrix
		want Truth
	}{
		{"mixed signs", intMatrix(t, [][]int64{{1, 1}, {1, -1}}), False},
		{"singular", intMatrix(t, [][]int64{{0, 0}, {0, 1}}), False},
		{"negative eigenvalue", intMatrix(t, [][]int64{{1, 2}, {2, 1}}), False},
		{"identity", Identity(3), True},
		{"triangular", intMatrix(t, [][]int64{{1, 2}, {0, 1}}), True},
		{"symmetric", intMatrix(t, [][]int64{{2, 1}, {1, 2}}), True},
		{"complex eigenvalues", intMatrix(t, [][]int64{{0, -1}, {1, 0}}), False},
		{"tridiagonal", intMatrix(t, [][]int64{{2, -1, 0}, {-1, 2, -1},
			{0, -1, 2}}), True},
		{"indefinite 3x3", intMatrix(t, [][]int64{{1, 2, 3}, {2, 1, 0},
			{3, 0, 1}}), False},
		{"symbolic diagonal", mustMatrix(t, [][]Expr{{x, Int(0)},
			{Int(0), y}}), Indeterminate},
		{"positive diagonal", mustMatrix(t, [][]Expr{{a, Int(0)},
			{Int(0), b}}), True},
		{"symbolic singular", mustMatrix(t, [][]Expr{{x, x}, {x, x}}), False},
		{"symbolic singular 3x3", mustMatrix(t, [][]Expr{{x, y, Int(1)},
			{x, y, Int(1)}, {Int(1), Int(0), a}}), False},
		{"not square", intMatrix(t, [][]int64{{1, 0}}), False},
	}

	for _, test := range tests {
		if got := PositiveDefinite(test.m); got != test.want {
			t.Errorf("%s: expected %v but got %v", test.name, test.want, got)
		}
	}
}

func TestEigenvals2x2(t *testing.T) {
	m := intMatrix(t, [][]int64{{1, 1}, {1, -1}})
	vals, err := m.Eigenvals()
	if err != nil {
		t.Fatal(err)
	}
	want := []Expr{Neg(Sqrt(Int(2))), Sqrt(Int(2))}
	if len(vals) != len(want) {
		t.Fatalf("expected %d eigenvalues but got %d", len(want), len(vals))
	}
	for i := range want {
		if !vals[i].Equal(want[i]) {
			t.Errorf("eigenvalue %d: expected %v but got %v", i, want[i],
				vals[i])
		}
	}

	rot := intMatrix(t, [][]int64{{0, -1}, {1, 0}})
	vals, err = rot.Eigenvals()
	if err != nil {
		t.Fatal(err)
	}
	if !vals[0].Equal(Neg(I)) || !vals[1].Equal(I) {
		t.Errorf("expected [-I I] but got %v", vals)
	}
}

func TestEigenvalsNumeric(t *testing.T) {
	const tolerance = 1e-9

	m := intMatrix(t, [][]int64{{2, 1, 0}, {1, 2, 0}, {0, 0, 5}})
	vals, err := m.Eigenvals()
	if err != nil {
		t.Fatal(err)
	}

	got := make([]float64, len(vals))
	for i, v := range vals {
		f, ok := v.Evalf(nil)
		if !ok {
			t.Fatalf("eigenvalue %v is not real", v)
		}
		got[i] = f
	}
	sort.Float64s(got)

	want := []float64{1, 3, 5}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("expected eigenvalues %v but got %v", want, got)
			break
		}
	}
}

func TestEigenvalsNoClosedForm(t *testing.T) {
	x := NewSymbol("x")
	m := mustMatrix(t, [][]Expr{
		{x, Int(1), Int(0)},
		{Int(2), x, Int(1)},
		{Int(0), Int(3), x},
	})
	if _, err := m.Eigenvals(); !errors.Is(err, ErrNoClosedForm) {
		t.Errorf("expected ErrNoClosedForm but got %v", err)
	}
	if got := PositiveDefinite(m); got != Indeterminate {
		t.Errorf("expected Indeterminate but got %v", got)
	}
}
