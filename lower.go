package symdist

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
	"github.com/sirupsen/logrus"
	G "gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

// Lower builds the expression e on g and returns the node holding its
// value. Every free symbol of e must be bound by name in inputs, and
// all inputs must share a dtype, which defaults to Float64 when there
// are no inputs. Constant subexpressions are evaluated in float64 and
// added to g as scalars. The orders of Bessel functions must be
// constant.
func Lower(g *G.ExprGraph, e sym.Expr, inputs map[string]*G.Node) (*G.Node,
	error) {
	dt := tensor.Float64
	first := true
	for name, n := range inputs {
		if first {
			dt = n.Dtype()
			first = false
			continue
		}
		if n.Dtype() != dt {
			return nil, fmt.Errorf("lower: input %s has dtype %v but "+
				"expected %v", name, n.Dtype(), dt)
		}
	}

	l := &lowerer{g: g, dt: dt, inputs: inputs}
	n, err := l.lower(e)
	if err != nil {
		return nil, fmt.Errorf("lower: %v", err)
	}
	return n, nil
}

type lowerer struct {
	g      *G.ExprGraph
	dt     tensor.Dtype
	inputs map[string]*G.Node
}

func (l *lowerer) lower(e sym.Expr) (*G.Node, error) {
	if sym.IsConstant(e) {
		return l.constant(e)
	}

	switch e := e.(type) {
	case *sym.Symbol:
		n, ok := l.inputs[e.Name()]
		if !ok {
			return nil, fmt.Errorf("unbound symbol %v", e)
		}
		return n, nil

	case *sym.Sum:
		return l.fold(e.Terms(), sym.Add, G.Add)

	case *sym.Product:
		return l.fold(e.Factors(), sym.Mul, mul)

	case *sym.Power:
		base, err := l.lower(e.Base())
		if err != nil {
			return nil, err
		}
		if e.Exponent().Equal(sym.Rat(1, 2)) {
			return G.Sqrt(base)
		}
		exp, err := l.lower(e.Exponent())
		if err != nil {
			return nil, err
		}
		return G.Pow(base, exp)

	case *sym.Func:
		return l.function(e)
	}

	return nil, fmt.Errorf("cannot lower %v of type %T", e, e)
}

func (l *lowerer) constant(e sym.Expr) (*G.Node, error) {
	v, ok := e.Evalf(nil)
	if !ok {
		return nil, fmt.Errorf("constant %v has no finite real value", e)
	}
	return scalar(l.g, l.dt, v)
}

// fold lowers a sum or product. Constant operands are combined
// symbolically into a single scalar.
func (l *lowerer) fold(operands []sym.Expr, combine func(...sym.Expr) sym.Expr,
	op func(a, b *G.Node) (*G.Node, error)) (*G.Node, error) {
	var constants []sym.Expr
	var nodes []*G.Node
	for _, o := range operands {
		if sym.IsConstant(o) {
			constants = append(constants, o)
			continue
		}
		n, err := l.lower(o)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	if len(constants) > 0 {
		n, err := l.constant(combine(constants...))
		if err != nil {
			return nil, err
		}
		nodes = append([]*G.Node{n}, nodes...)
	}

	acc := nodes[0]
	for _, n := range nodes[1:] {
		var err error
		if acc, err = op(acc, n); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func (l *lowerer) function(f *sym.Func) (*G.Node, error) {
	args := f.Args()
	switch f.Name() {
	case "exp":
		x, err := l.lower(args[0])
		if err != nil {
			return nil, err
		}
		return G.Exp(x)

	case "gamma":
		x, err := l.lower(args[0])
		if err != nil {
			return nil, err
		}
		return Gamma(x)

	case "besselk":
		nu, ok := args[0].Evalf(nil)
		if !ok || !sym.IsConstant(args[0]) {
			return nil, fmt.Errorf("besselk order %v is not constant",
				args[0])
		}
		x, err := l.lower(args[1])
		if err != nil {
			return nil, err
		}
		return BesselK(x, nu)
	}

	return nil, fmt.Errorf("cannot lower function %v", f.Name())
}

// Evaluate evaluates l at a batch of points on a tape machine. Each
// point holds one value per parameter of l, in parameter order.
func Evaluate(l *sym.Lambda, points [][]float64) ([]float64, error) {
	if len(points) == 0 {
		return nil, nil
	}

	g := G.NewGraph()
	inputs := make(map[string]*G.Node, l.Arity())
	for j, p := range l.Params() {
		col := make([]float64, len(points))
		for i, pt := range points {
			if len(pt) != l.Arity() {
				return nil, fmt.Errorf("evaluate: point %d has %d values "+
					"but %v has %d parameters", i, len(pt), l, l.Arity())
			}
			col[i] = pt[j]
		}

		inputs[p.Name()] = G.NewVector(
			g,
			tensor.Float64,
			G.WithShape(len(points)),
			G.WithName(p.Name()),
			G.WithValue(tensor.New(
				tensor.WithShape(len(points)),
				tensor.WithBacking(col),
			)),
		)
	}

	out, err := Lower(g, l.Body(), inputs)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %v", err)
	}
	var computed G.Value
	G.Read(out, &computed)

	logger.WithFields(logrus.Fields{
		"params": l.Arity(),
		"points": len(points),
		"nodes":  len(g.AllNodes()),
	}).Debug("evaluating lowered expression")

	vm := G.NewTapeMachine(g)
	defer vm.Close()
	if err := vm.RunAll(); err != nil {
		return nil, fmt.Errorf("evaluate: %v", err)
	}

	ret := make([]float64, len(points))
	switch data := computed.Data().(type) {
	case float64:
		for i := range ret {
			ret[i] = data
		}
	case []float64:
		copy(ret, data)
	default:
		return nil, fmt.Errorf("evaluate: unexpected output of type %T",
			data)
	}
	return ret, nil
}
