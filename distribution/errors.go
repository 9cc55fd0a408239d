package distribution

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter matches every *InvalidParameterError with
	// errors.Is
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrArity is returned when a density or marginal is given the
	// wrong number of arguments
	ErrArity = errors.New("wrong number of arguments")

	// ErrIndex is returned when a marginal is requested over an index
	// outside the components of a distribution
	ErrIndex = errors.New("component index out of range")

	// ErrMarginalUnsupported is returned when a marginal is requested
	// from a distribution without closed form marginals
	ErrMarginalUnsupported = errors.New("marginal distribution unsupported")

	// ErrUndefined is returned when a moment does not exist or cannot
	// be shown to exist
	ErrUndefined = errors.New("undefined")
)

// Reason is the constraint a parameter failed
type Reason int

const (
	DimensionMismatch Reason = iota
	NotSquare
	NotPositiveDefinite
	NotPositive
	NotReal
)

func (r Reason) String() string {
	switch r {
	case DimensionMismatch:
		return "dimension mismatch"
	case NotSquare:
		return "not square"
	case NotPositiveDefinite:
		return "not positive definite"
	case NotPositive:
		return "not positive"
	case NotReal:
		return "not real"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// InvalidParameterError reports a parameter that fails the validity
// constraints of a distribution
type InvalidParameterError struct {
	Kind   Kind
	Reason Reason
	Msg    string
}

func newInvalid(k Kind, r Reason, format string,
	args ...interface{}) *InvalidParameterError {
	return &InvalidParameterError{
		Kind:   k,
		Reason: r,
		Msg:    fmt.Sprintf(format, args...),
	}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%v: %v: %s", e.Kind, e.Reason, e.Msg)
}

// Is reports whether target is ErrInvalidParameter
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}
