package symdist

import (
	"fmt"
	"hash"

	"github.com/chewxy/hm"
	"github.com/samuelfneumann/symdist/sym"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// BesselKOp is the element-wise modified Bessel function of the second
// kind of a fixed order
type BesselKOp struct {
	nu float64
}

func NewBesselKOp(nu float64) G.Op {
	return &BesselKOp{nu: nu}
}

// Order returns the order of the Bessel function
func (b *BesselKOp) Order() float64 { return b.nu }

func (b *BesselKOp) Arity() int {
	return 1
}

func (b *BesselKOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (b *BesselKOp) Do(values ...G.Value) (G.Value, error) {
	if err := CheckArity(b, len(values)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	if err := checkFloat(values[0]); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return besselKKernel(b.nu).apply(values[0], nil)
}

func (b *BesselKOp) ReturnsPtr() bool { return false }

func (b *BesselKOp) CallsExtern() bool { return false }

func (b *BesselKOp) OverwritesInput() int { return -1 }

func (b *BesselKOp) String() string {
	return fmt.Sprintf("BesselK{%v}", b.nu)
}

// InferShape returns the output shape as a function of the inputs
func (b *BesselKOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(b, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

// WriteHash writes the hash of the receiver to a hash struct
func (b *BesselKOp) WriteHash(h hash.Hash) {
	fmt.Fprintf(h, "BesselK{%v}()", b.nu)
}

// Hashcode returns the hash code of the receiver
func (b *BesselKOp) Hashcode() uint32 { return SimpleHash(b) }

func (b *BesselKOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(b, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	nodes := make(G.Nodes, 1)
	nodes[0], err = G.ApplyOp(&BesselKDiffOp{b.nu}, inputs[0], grad)

	return nodes, err
}

func (b *BesselKOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("besselK operator only supports one input, got "+
			"%d instead", inputs))
	}
	return []bool{true}
}

// BesselKDiffOp computes the gradient of BesselKOp with respect to its
// argument using K'ᵥ(x) = -(Kᵥ₋₁(x) + Kᵥ₊₁(x)) / 2
type BesselKDiffOp struct {
	nu float64
}

func (b *BesselKDiffOp) Arity() int { return 2 }

func (b *BesselKDiffOp) ReturnsPtr() bool { return false }

func (b *BesselKDiffOp) CallsExtern() bool { return false }

func (b *BesselKDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, b.String()) }

func (b *BesselKDiffOp) Hashcode() uint32 { return SimpleHash(b) }

func (b *BesselKDiffOp) String() string {
	return fmt.Sprintf("BesselKDiff{%v}()", b.nu)
}

func (b *BesselKDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape,
	error) {
	err := CheckArity(b, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (b *BesselKDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (b *BesselKDiffOp) OverwritesInput() int { return -1 }

func (b *BesselKDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(b, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	if err := checkFloat(inputs[0]); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return besselKDiffKernel(b.nu).apply(inputs[0], inputs[1])
}

func besselKKernel(nu float64) kernel {
	return kernel{
		f64: func(x, _ float64) float64 { return sym.BesselKValue(nu, x) },
		f32: func(x, _ float32) float32 {
			return float32(sym.BesselKValue(nu, float64(x)))
		},
	}
}

func besselKDiffKernel(nu float64) kernel {
	deriv := func(x float64) float64 {
		return -0.5 * (sym.BesselKValue(nu-1, x) + sym.BesselKValue(nu+1, x))
	}
	return kernel{
		f64: func(x, grad float64) float64 { return grad * deriv(x) },
		f32: func(x, grad float32) float32 {
			return grad * float32(deriv(float64(x)))
		},
	}
}
