package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// IID is the joint distribution of n independent copies of a
// distribution. Components are laid out copy by copy, so component i
// is component i % d of copy i / d, where d is the dimension of the
// copied distribution.
type IID struct {
	Distribution
	n int
}

// NewIID returns the joint distribution of n independent copies of d
func NewIID(d Distribution, n int) (*IID, error) {
	if n < 1 {
		return nil, fmt.Errorf("newIID: expected at least one copy but "+
			"got %d", n)
	}
	return &IID{d, n}, nil
}

func (i *IID) Kind() Kind { return KindIID }

// Copies returns the number of independent copies
func (i *IID) Copies() int { return i.n }

// Base returns the copied distribution
func (i *IID) Base() Distribution { return i.Distribution }

func (i *IID) Dim() int { return i.n * i.Distribution.Dim() }

func (i *IID) Set() Set {
	base := i.Distribution.Set().Components()
	c := make([]Interval, 0, len(base)*i.n)
	for j := 0; j < i.n; j++ {
		c = append(c, base...)
	}
	return Product(c...)
}

func (i *IID) Params() []Param {
	return append(i.Distribution.Params(), Param{"copies", i.n})
}

// PDF returns the product of the densities of each copy
func (i *IID) PDF(args ...sym.Expr) (sym.Expr, error) {
	if err := checkArgs(KindIID, i.Dim(), args); err != nil {
		return nil, err
	}
	d := i.Distribution.Dim()
	factors := make([]sym.Expr, i.n)
	for j := range factors {
		f, err := i.Distribution.PDF(args[j*d : (j+1)*d]...)
		if err != nil {
			return nil, fmt.Errorf("pdf: could not compute density of "+
				"copy %d: %w", j, err)
		}
		factors[j] = f
	}
	return sym.Mul(factors...), nil
}

// Marginal returns the product of the marginal densities of each copy
// with a requested component. A copy whose components are all
// requested contributes its full density. Other copies require the
// copied distribution to be a Marginaler.
func (i *IID) Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda,
	error) {
	idx, err := normaliseIndices(indices, i.Dim())
	if err != nil {
		return nil, fmt.Errorf("marginal: %w", err)
	}
	if len(syms) != len(idx) {
		return nil, fmt.Errorf("marginal: expected %d symbols but got %d: %w",
			len(idx), len(syms), ErrArity)
	}

	d := i.Distribution.Dim()
	var factors []sym.Expr
	for start := 0; start < len(idx); {
		copyIdx := idx[start] / d
		end := start
		var local []int
		for end < len(idx) && idx[end]/d == copyIdx {
			local = append(local, idx[end]%d)
			end++
		}

		f, err := i.copyMarginal(local, syms[start:end])
		if err != nil {
			return nil, fmt.Errorf("marginal: copy %d: %w", copyIdx, err)
		}
		factors = append(factors, f)
		start = end
	}
	return sym.NewLambda(syms, sym.Mul(factors...))
}

func (i *IID) copyMarginal(local []int, syms []*sym.Symbol) (sym.Expr,
	error) {
	if len(local) == i.Distribution.Dim() {
		l, err := Lambda(i.Distribution, syms)
		if err != nil {
			return nil, err
		}
		return l.Body(), nil
	}

	m, ok := i.Distribution.(Marginaler)
	if !ok {
		return nil, fmt.Errorf("%v: %w", i.Distribution.Kind(),
			ErrMarginalUnsupported)
	}
	l, err := m.Marginal(local, syms)
	if err != nil {
		return nil, err
	}
	return l.Body(), nil
}
