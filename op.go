// Package symdist evaluates symbolic densities on Gorgonia expression
// graphs
package symdist

import (
	"fmt"

	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Gamma computes the element-wise gamma function
func Gamma(x *G.Node) (*G.Node, error) {
	return G.ApplyOp(NewGammaOp(), x)
}

// BesselK computes the element-wise modified Bessel function of the
// second kind of order nu. Only the gradient with respect to x is
// available.
func BesselK(x *G.Node, nu float64) (*G.Node, error) {
	return G.ApplyOp(NewBesselKOp(nu), x)
}

// scalar returns a scalar node on g holding v
func scalar(g *G.ExprGraph, dt tensor.Dtype, v float64) (*G.Node, error) {
	switch dt {
	case tensor.Float64:
		return G.NewScalar(g, G.Float64, G.WithValue(v)), nil
	case tensor.Float32:
		return G.NewScalar(g, G.Float32, G.WithValue(float32(v))), nil
	}
	return nil, fmt.Errorf("scalar: unsupported dtype %v", dt)
}

// mul multiplies element-wise, scaling when either node is a scalar
func mul(a, b *G.Node) (*G.Node, error) {
	if a.IsScalar() || b.IsScalar() {
		return G.Mul(a, b)
	}
	return G.HadamardProd(a, b)
}
