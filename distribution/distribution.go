// Package distribution provides probability distributions whose
// densities are exact symbolic expressions
package distribution

import (
	"fmt"

	"github.com/samuelfneumann/symdist/sym"
)

// Kind tags the concrete variant of a Distribution
type Kind int

const (
	KindNormal Kind = iota
	KindLaplace
	KindStudentT
	KindNormalGamma
	KindGamma
	KindUnivariateT
	KindIID
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "MultivariateNormal"
	case KindLaplace:
		return "MultivariateLaplace"
	case KindStudentT:
		return "MultivariateT"
	case KindNormalGamma:
		return "NormalGamma"
	case KindGamma:
		return "Gamma"
	case KindUnivariateT:
		return "StudentT"
	case KindIID:
		return "IID"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Param is a named parameter of a distribution. Value holds a
// sym.Expr for scalar parameters, a []sym.Expr for vector parameters
// and a *sym.Matrix for matrix parameters.
type Param struct {
	Name  string
	Value interface{}
}

func (p Param) String() string {
	return fmt.Sprintf("%s=%v", p.Name, p.Value)
}

// Distribution is a probability distribution with a closed form
// density
type Distribution interface {
	Kind() Kind

	// Params returns the parameters of the distribution in the order
	// they are passed to its constructor
	Params() []Param

	// Set returns the support of the distribution
	Set() Set

	IsContinuous() bool

	// Dim returns the number of components of a sample
	Dim() int

	// Check validates the parameters of the distribution. A
	// distribution returned by a constructor has always passed Check
	// with the options it was constructed with.
	Check(opts ...Option) error

	// PDF returns the density at the point args, which must have one
	// expression per component
	PDF(args ...sym.Expr) (sym.Expr, error)
}

// Marginaler is a Distribution whose marginal distributions have a
// closed form
type Marginaler interface {
	Distribution

	// Marginal returns the density of the components at indices as a
	// function of syms, one symbol per distinct index in ascending
	// index order. Indices are deduplicated and sorted before use.
	Marginal(indices []int, syms []*sym.Symbol) (*sym.Lambda, error)
}

// Meaner is a Distribution with a closed form mean
type Meaner interface {
	Distribution

	// Mean returns the mean of each component. ErrUndefined is
	// returned if the mean cannot be shown to exist.
	Mean() ([]sym.Expr, error)
}

// Lambda returns the density of d as a function of syms
func Lambda(d Distribution, syms []*sym.Symbol) (*sym.Lambda, error) {
	if len(syms) != d.Dim() {
		return nil, fmt.Errorf("lambda: %v expects %d symbols but got %d: "+
			"%w", d.Kind(), d.Dim(), len(syms), ErrArity)
	}
	body, err := d.PDF(symbolsToExprs(syms)...)
	if err != nil {
		return nil, fmt.Errorf("lambda: %w", err)
	}
	return sym.NewLambda(syms, body)
}
