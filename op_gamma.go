package symdist

import (
	"fmt"
	"hash"
	"math"

	"github.com/chewxy/hm"
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/mathext"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// GammaOp is the element-wise gamma function
type GammaOp struct{}

func NewGammaOp() G.Op {
	return &GammaOp{}
}

func (e *GammaOp) Arity() int {
	return 1
}

func (e *GammaOp) Type() hm.Type {
	// op :: (Arithable a) => a -> a
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a)
}

func (e *GammaOp) Do(values ...G.Value) (G.Value, error) {
	if err := CheckArity(e, len(values)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	if err := checkFloat(values[0]); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return gammaKernel.apply(values[0], nil)
}

func (e *GammaOp) ReturnsPtr() bool { return false }

func (e *GammaOp) CallsExtern() bool { return false }

func (e *GammaOp) OverwritesInput() int { return -1 }

func (e *GammaOp) String() string {
	return "Gamma"
}

// InferShape returns the output shape as a function of the inputs
func (e *GammaOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(e, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

// WriteHash writes the hash of the receiver to a hash struct
func (e *GammaOp) WriteHash(h hash.Hash) { fmt.Fprintf(h, "Gamma()") }

// Hashcode returns the hash code of the receiver
func (e *GammaOp) Hashcode() uint32 { return SimpleHash(e) }

func (e *GammaOp) SymDiff(inputs G.Nodes, output,
	grad *G.Node) (G.Nodes, error) {
	err := CheckArity(e, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("symDiff: %v", err)
	}

	nodes := make(G.Nodes, 1)
	nodes[0], err = G.ApplyOp(&GammaDiffOp{}, inputs[0], grad)

	return nodes, err
}

func (e *GammaOp) DiffWRT(inputs int) []bool {
	if inputs != 1 {
		panic(fmt.Sprintf("gamma operator only supports one input, got %d "+
			"instead", inputs))
	}
	return []bool{true}
}

// GammaDiffOp computes the gradient of GammaOp, Γ'(x) = Γ(x)ψ(x)
type GammaDiffOp struct{}

func (e *GammaDiffOp) Arity() int { return 2 }

func (e *GammaDiffOp) ReturnsPtr() bool { return false }

func (e *GammaDiffOp) CallsExtern() bool { return false }

func (e *GammaDiffOp) WriteHash(h hash.Hash) { fmt.Fprint(h, e.String()) }

func (e *GammaDiffOp) Hashcode() uint32 { return SimpleHash(e) }

func (e *GammaDiffOp) String() string { return "GammaDiff()" }

func (e *GammaDiffOp) InferShape(inputs ...G.DimSizer) (tensor.Shape, error) {
	err := CheckArity(e, len(inputs))
	if err != nil {
		return nil, fmt.Errorf("inferShape: %v", err)
	}
	if inputs[0] == nil {
		return nil, fmt.Errorf("inferShape: nil input")
	}

	return inputs[0].(tensor.Shape), nil
}

func (e *GammaDiffOp) Type() hm.Type {
	a := hm.TypeVariable('a')
	return hm.NewFnType(a, a, a)
}

func (e *GammaDiffOp) OverwritesInput() int { return -1 }

func (e *GammaDiffOp) Do(inputs ...G.Value) (G.Value, error) {
	if err := CheckArity(e, len(inputs)); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}
	if err := checkFloat(inputs[0]); err != nil {
		return nil, fmt.Errorf("do: %v", err)
	}

	return gammaDiffKernel.apply(inputs[0], inputs[1])
}

var gammaKernel = kernel{
	f64: func(x, _ float64) float64 { return math.Gamma(x) },
	f32: func(x, _ float32) float32 { return float32(math.Gamma(float64(x))) },
}

var gammaDiffKernel = kernel{
	f64: func(x, grad float64) float64 {
		return grad * math.Gamma(x) * mathext.Digamma(x)
	},
	f32: func(x, grad float32) float32 {
		// Γ(x) = sign exp(lgamma(x)), exponentiated in single precision
		lg, sign := math.Lgamma(float64(x))
		gamma := float32(sign) * math32.Exp(float32(lg))
		return grad * gamma * float32(mathext.Digamma(float64(x)))
	},
}
