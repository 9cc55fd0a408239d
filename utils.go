package symdist

import (
	"fmt"
	"hash/fnv"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// SimpleHash constructs the 32-bit FNV-1a hash of a Gorgonia Op.
// Taken from Gorgonia.
func SimpleHash(op G.Op) uint32 {
	h := fnv.New32a()
	op.WriteHash(h)
	return h.Sum32()
}

func CheckArity(op G.Op, inputs int) error {
	if inputs != op.Arity() && op.Arity() >= 0 {
		return fmt.Errorf("%v has an arity of %d. Got %d instead", op,
			op.Arity(), inputs)
	}
	return nil
}

// kernel is an element-wise function of an input and the gradient
// flowing into it
type kernel struct {
	f64 func(x, grad float64) float64
	f32 func(x, grad float32) float32
}

// apply evaluates k element-wise on x and grad, returning a new value
// with the shape of x. If grad is nil a gradient of 1 is used. A
// scalar grad is broadcast over x.
func (k kernel) apply(x, grad G.Value) (G.Value, error) {
	var g interface{}
	if grad != nil {
		g = grad.Data()
	}

	switch data := x.Data().(type) {
	case float64:
		gv := 1.0
		if g != nil {
			v, ok := g.(float64)
			if !ok {
				return nil, fmt.Errorf("apply: gradient of type %T for "+
					"float64 input", g)
			}
			gv = v
		}
		return G.NewF64(k.f64(data, gv)), nil

	case float32:
		gv := float32(1)
		if g != nil {
			v, ok := g.(float32)
			if !ok {
				return nil, fmt.Errorf("apply: gradient of type %T for "+
					"float32 input", g)
			}
			gv = v
		}
		return G.NewF32(k.f32(data, gv)), nil

	case []float64:
		grads, err := f64Grads(g, len(data))
		if err != nil {
			return nil, fmt.Errorf("apply: %v", err)
		}
		out := make([]float64, len(data))
		for i, elem := range data {
			out[i] = k.f64(elem, grads(i))
		}
		return tensor.New(
			tensor.WithShape(x.Shape().Clone()...),
			tensor.WithBacking(out),
		), nil

	case []float32:
		grads, err := f32Grads(g, len(data))
		if err != nil {
			return nil, fmt.Errorf("apply: %v", err)
		}
		out := make([]float32, len(data))
		for i, elem := range data {
			out[i] = k.f32(elem, grads(i))
		}
		return tensor.New(
			tensor.WithShape(x.Shape().Clone()...),
			tensor.WithBacking(out),
		), nil
	}

	return nil, fmt.Errorf("apply: unsupported input %T of dtype %v", x,
		x.Dtype())
}

func f64Grads(g interface{}, n int) (func(int) float64, error) {
	switch g := g.(type) {
	case nil:
		return func(int) float64 { return 1 }, nil
	case float64:
		return func(int) float64 { return g }, nil
	case []float64:
		if len(g) != n {
			return nil, fmt.Errorf("gradient has %d elements but input "+
				"has %d", len(g), n)
		}
		return func(i int) float64 { return g[i] }, nil
	}
	return nil, fmt.Errorf("gradient of type %T for float64 input", g)
}

func f32Grads(g interface{}, n int) (func(int) float32, error) {
	switch g := g.(type) {
	case nil:
		return func(int) float32 { return 1 }, nil
	case float32:
		return func(int) float32 { return g }, nil
	case []float32:
		if len(g) != n {
			return nil, fmt.Errorf("gradient has %d elements but input "+
				"has %d", len(g), n)
		}
		return func(i int) float32 { return g[i] }, nil
	}
	return nil, fmt.Errorf("gradient of type %T for float32 input", g)
}

// checkFloat returns an error if v is not a floating point scalar or
// tensor
func checkFloat(v G.Value) error {
	if v == nil {
		return fmt.Errorf("no input")
	}
	switch v.Dtype() {
	case tensor.Float64, tensor.Float32:
		return nil
	}
	return fmt.Errorf("expected a floating point input but got %v",
		v.Dtype())
}
