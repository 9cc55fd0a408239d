package distribution

import "github.com/samuelfneumann/symdist/sym"

// selectVec returns the elements of v at indices
func selectVec(v []sym.Expr, indices []int) []sym.Expr {
	out := make([]sym.Expr, len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out
}

// subVec returns a - b element-wise
func subVec(a, b []sym.Expr) []sym.Expr {
	out := make([]sym.Expr, len(a))
	for i := range a {
		out[i] = sym.Sub(a[i], b[i])
	}
	return out
}

// symbolsToExprs converts symbols to expressions
func symbolsToExprs(syms []*sym.Symbol) []sym.Expr {
	out := make([]sym.Expr, len(syms))
	for i, s := range syms {
		out[i] = s
	}
	return out
}
