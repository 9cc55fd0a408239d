// Package stats declares named random variables over the joint
// distributions of package distribution and queries their densities
package stats

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/symdist/distribution"
	"github.com/samuelfneumann/symdist/sym"
	"github.com/sirupsen/logrus"
)

// JointPSpace is the probability space of a vector valued random
// variable. Each component of the variable is represented by a symbol
// named name[i].
type JointPSpace struct {
	name  string
	dist  distribution.Distribution
	syms  []*sym.Symbol
	value *RandomSymbol
}

func newJointPSpace(name string, d distribution.Distribution) (*JointPSpace,
	error) {
	if name == "" {
		return nil, fmt.Errorf("newJointPSpace: random variable must be named")
	}

	syms := make([]*sym.Symbol, d.Dim())
	for i := range syms {
		syms[i] = sym.NewSymbol(fmt.Sprintf("%s[%d]", name, i))
	}

	ps := &JointPSpace{name: name, dist: d, syms: syms}
	ps.value = &RandomSymbol{pspace: ps}

	logger.WithFields(logrus.Fields{
		"name": name,
		"kind": d.Kind(),
		"dim":  d.Dim(),
	}).Debug("declared random variable")
	return ps, nil
}

// Value returns the random variable of the space
func (p *JointPSpace) Value() *RandomSymbol { return p.value }

// Distribution returns the joint distribution of the space
func (p *JointPSpace) Distribution() distribution.Distribution { return p.dist }

// ComponentCount returns the number of components of the random
// variable
func (p *JointPSpace) ComponentCount() int { return len(p.syms) }

// Symbols returns the symbol of each component
func (p *JointPSpace) Symbols() []*sym.Symbol {
	return append([]*sym.Symbol(nil), p.syms...)
}

// RandomSymbol is a named vector valued random variable
type RandomSymbol struct {
	pspace *JointPSpace
}

// Name returns the name the variable was declared with
func (r *RandomSymbol) Name() string { return r.pspace.name }

// PSpace returns the probability space of the variable
func (r *RandomSymbol) PSpace() *JointPSpace { return r.pspace }

// Distribution returns the joint distribution of the variable
func (r *RandomSymbol) Distribution() distribution.Distribution {
	return r.pspace.dist
}

// Index returns the symbol of component i. Index panics if i is out
// of range.
func (r *RandomSymbol) Index(i int) *sym.Symbol {
	if i < 0 || i >= len(r.pspace.syms) {
		panic(fmt.Sprintf("index: component %d out of range for %s with %d "+
			"components", i, r.Name(), len(r.pspace.syms)))
	}
	return r.pspace.syms[i]
}

func (r *RandomSymbol) String() string { return r.Name() }

// Mean returns the mean of each component of rv
func Mean(rv *RandomSymbol) ([]sym.Expr, error) {
	m, ok := rv.Distribution().(distribution.Meaner)
	if !ok {
		return nil, errors.Wrapf(distribution.ErrUndefined,
			"mean: %v has no closed form mean", rv.Distribution().Kind())
	}
	mean, err := m.Mean()
	if err != nil {
		return nil, errors.Wrapf(err, "mean of %s", rv.Name())
	}
	return mean, nil
}
