package stats

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/symdist/distribution"
	"github.com/samuelfneumann/symdist/sym"
)

// DensityFunc is the joint density of a random variable
type DensityFunc struct {
	rv     *RandomSymbol
	lambda *sym.Lambda
}

// Density returns the joint density of rv as a function of its
// component symbols
func Density(rv *RandomSymbol) (*DensityFunc, error) {
	l, err := distribution.Lambda(rv.Distribution(), rv.PSpace().Symbols())
	if err != nil {
		return nil, errors.Wrapf(err, "density of %s", rv.Name())
	}
	return &DensityFunc{rv: rv, lambda: l}, nil
}

// Call returns the density at a point. Each argument may be anything
// accepted by sym.Sympify.
func (d *DensityFunc) Call(args ...interface{}) (sym.Expr, error) {
	exprs := make([]sym.Expr, len(args))
	for i, a := range args {
		e, err := sym.Sympify(a)
		if err != nil {
			return nil, errors.Wrapf(err, "density of %s: argument %d",
				d.rv.Name(), i)
		}
		exprs[i] = e
	}
	v, err := d.lambda.Call(exprs...)
	if err != nil {
		return nil, errors.Wrapf(err, "density of %s", d.rv.Name())
	}
	return v, nil
}

// Lambda returns the density as a lambda over the component symbols
func (d *DensityFunc) Lambda() *sym.Lambda { return d.lambda }

func (d *DensityFunc) String() string { return d.lambda.String() }

// MarginalDistribution returns the marginal density of the components
// of rv given by indices, as a lambda over their component symbols in
// ascending index order. Each index is either an int or a component
// symbol returned by rv.Index.
func MarginalDistribution(rv *RandomSymbol, indices ...interface{}) (
	*sym.Lambda, error) {
	if len(indices) == 0 {
		return nil, errors.Wrapf(distribution.ErrArity,
			"marginalDistribution of %s: no components given", rv.Name())
	}

	m, ok := rv.Distribution().(distribution.Marginaler)
	if !ok {
		return nil, errors.Wrapf(distribution.ErrMarginalUnsupported,
			"marginalDistribution of %s: %v", rv.Name(),
			rv.Distribution().Kind())
	}

	idx, err := componentIndices(rv, indices)
	if err != nil {
		return nil, errors.Wrapf(err, "marginalDistribution of %s",
			rv.Name())
	}

	syms := make([]*sym.Symbol, len(idx))
	for i, j := range idx {
		syms[i] = rv.Index(j)
	}
	l, err := m.Marginal(idx, syms)
	if err != nil {
		return nil, errors.Wrapf(err, "marginalDistribution of %s",
			rv.Name())
	}
	return l, nil
}

// componentIndices resolves indices to distinct component indices in
// ascending order
func componentIndices(rv *RandomSymbol, indices []interface{}) ([]int,
	error) {
	n := rv.PSpace().ComponentCount()
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))

	for _, index := range indices {
		var i int
		switch v := index.(type) {
		case int:
			i = v
		case *sym.Symbol:
			i = -1
			for j, s := range rv.PSpace().Symbols() {
				if s.Equal(v) {
					i = j
					break
				}
			}
			if i < 0 {
				return nil, errors.Wrapf(distribution.ErrIndex,
					"%v is not a component of %s", v, rv.Name())
			}
		default:
			return nil, errors.Errorf("cannot use %v (%T) as a component "+
				"index", index, index)
		}

		if i < 0 || i >= n {
			return nil, errors.Wrapf(distribution.ErrIndex, "index %d with "+
				"%d components", i, n)
		}
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out, nil
}
