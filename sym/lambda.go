package sym

import (
	"fmt"
	"strings"
)

// Lambda is a deferred function from a list of parameter symbols to an
// expression. Calling it substitutes all arguments simultaneously.
type Lambda struct {
	params []*Symbol
	body   Expr
}

// NewLambda returns the function params -> body. Parameter names must
// be distinct.
func NewLambda(params []*Symbol, body Expr) (*Lambda, error) {
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if seen[p.name] {
			return nil, fmt.Errorf("newLambda: duplicate parameter %v", p)
		}
		seen[p.name] = true
	}
	return &Lambda{params: append([]*Symbol(nil), params...), body: body}, nil
}

// Params returns the parameters of the function
func (l *Lambda) Params() []*Symbol {
	return append([]*Symbol(nil), l.params...)
}

// Body returns the expression the function maps its parameters to
func (l *Lambda) Body() Expr { return l.body }

// Arity returns the number of parameters
func (l *Lambda) Arity() int { return len(l.params) }

// Call returns the body with every parameter replaced by the matching
// argument
func (l *Lambda) Call(args ...Expr) (Expr, error) {
	if len(args) != len(l.params) {
		return nil, fmt.Errorf("call: expected %d arguments, got %d",
			len(l.params), len(args))
	}
	env := make(map[string]Expr, len(args))
	for i, p := range l.params {
		env[p.name] = args[i]
	}
	return l.body.Subs(env), nil
}

// Equal returns whether l and o have the same parameters and
// structurally equal bodies
func (l *Lambda) Equal(o *Lambda) bool {
	if len(l.params) != len(o.params) {
		return false
	}
	for i := range l.params {
		if !l.params[i].Equal(o.params[i]) {
			return false
		}
	}
	return l.body.Equal(o.body)
}

func (l *Lambda) String() string {
	names := make([]string, len(l.params))
	for i, p := range l.params {
		names[i] = p.name
	}
	return "Lambda((" + strings.Join(names, ", ") + "), " + l.body.String() + ")"
}
