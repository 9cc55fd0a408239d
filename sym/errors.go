package sym

import "github.com/pkg/errors"

var (
	// ErrSingular is returned when inverting a matrix whose determinant
	// is provably zero
	ErrSingular = errors.New("sym: singular matrix")

	// ErrShape is returned when matrix dimensions are incompatible
	ErrShape = errors.New("sym: incompatible shapes")

	// ErrNoClosedForm is returned when eigenvalues cannot be found
	// exactly and the matrix has free symbols
	ErrNoClosedForm = errors.New("sym: no closed form")

	// ErrSympify is returned when a value cannot be converted to an
	// expression
	ErrSympify = errors.New("sym: cannot sympify")
)
