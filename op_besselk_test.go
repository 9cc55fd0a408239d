package symdist

import (
	"math"
	"math/rand"
	"testing"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// besselKHalf is K_{1/2}(x) = √(π/2x) exp(-x)
func besselKHalf(x float64) float64 {
	return math.Sqrt(math.Pi/(2*x)) * math.Exp(-x)
}

func TestBesselK_graph(t *testing.T) {
	const tolerance float64 = 0.0001
	const size int = 20

	backing := make([]float64, size)
	out := make([]float64, size)
	grad := make([]float64, size)
	for i := range backing {
		x := 0.25 + rand.Float64()*3
		backing[i] = x
		out[i] = besselKHalf(x)
		grad[i] = -besselKHalf(x) * (1 + 1/(2*x)) / float64(size)
	}

	g := G.NewGraph()
	in := G.NewVector(
		g,
		tensor.Float64,
		G.WithShape(size),
		G.WithValue(tensor.New(
			tensor.WithShape(size),
			tensor.WithBacking(backing),
		)),
	)
	computedNode, err := BesselK(in, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	var computed G.Value
	G.Read(computedNode, &computed)

	mean := G.Must(G.Mean(computedNode))
	diff, err := G.Grad(mean, in)
	if err != nil {
		t.Fatal(err)
	}
	var computedDiff G.Value
	G.Read(diff[0], &computedDiff)

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		t.Fatal(err)
	}

	output := computed.Data().([]float64)
	outGrad := computedDiff.Data().([]float64)
	for i := range out {
		if math.Abs(out[i]-output[i]) > tolerance {
			t.Errorf("incorrect value\nexpected: %v \nreceived:%v",
				out[i], output[i])
		}
		if math.Abs(outGrad[i]-grad[i]) > tolerance {
			t.Errorf("incorrect gradient value\nexpected: %v \nreceived:%v",
				grad[i], outGrad[i])
		}
	}
}

func TestBesselKOp_hash(t *testing.T) {
	a, b := NewBesselKOp(0), NewBesselKOp(1)
	if a.Hashcode() == b.Hashcode() {
		t.Error("ops of different orders should hash differently")
	}
	if a.Hashcode() != NewBesselKOp(0).Hashcode() {
		t.Error("ops of the same order should hash equally")
	}
	if a.String() != "BesselK{0}" {
		t.Errorf("unexpected name %v", a)
	}
}
