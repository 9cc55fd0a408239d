package distribution

import (
	"testing"

	"github.com/samuelfneumann/symdist/sym"
)

func TestIIDPDF(t *testing.T) {
	g, err := NewGamma(sym.Int(2), sym.Int(1))
	if err != nil {
		t.Fatal(err)
	}
	iid, err := NewIID(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if iid.Dim() != 3 || iid.Kind() != KindIID {
		t.Errorf("unexpected dimension %v or kind %v", iid.Dim(), iid.Kind())
	}

	got, err := iid.PDF(ints(1, 2, 3)...)
	if err != nil {
		t.Fatal(err)
	}

	// x exp(-x) for each copy
	want := sym.Mul(sym.Int(6), sym.Exp(sym.Int(-6)))
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	if !iid.Set().Equal(Product(PositiveReals, PositiveReals, PositiveReals)) {
		t.Errorf("unexpected support %v", iid.Set())
	}
}

func TestIIDMarginal(t *testing.T) {
	n, err := NewNormal(ints(1, 2), sym.Identity(2))
	if err != nil {
		t.Fatal(err)
	}
	iid, err := NewIID(n, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Component 1 of the first copy and both components of the second
	l, err := iid.Marginal([]int{3, 1, 2}, symbols("x", 3))
	if err != nil {
		t.Fatal(err)
	}
	got, err := l.Call(ints(2, 1, 2)...)
	if err != nil {
		t.Fatal(err)
	}
	want := sym.Mul(
		sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Rat(-1, 2)),
		sym.Pow(sym.Mul(sym.Int(2), sym.Pi), sym.Int(-1)),
	)
	if !got.Equal(want) {
		t.Errorf("expected %v but got %v", want, got)
	}

	if _, err := NewIID(n, 0); err == nil {
		t.Error("expected an error for zero copies")
	}
}
