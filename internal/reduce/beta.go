// Package reduce implements the three rewrite relations of the core —
// beta, delta, special — and the combined normalizer/conversion
// checker that drives them (spec.md §4.4-§4.7).
package reduce

import "github.com/tallentype/pts/internal/term"

// BetaStep performs at most one step of beta reduction, searching in
// the deterministic leftmost-outermost, binder-first order of
// spec.md §4.4. The returned bool is true iff a contraction or a
// nested reduction occurred.
func BetaStep(t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.Binder:
		if newDomain, ok := BetaStep(n.Bound.Type); ok {
			return term.Binder{Kind: n.Kind, Bound: term.Param{Name: n.Bound.Name, Type: newDomain}, Body: n.Body}, true
		}
		if newBody, ok := BetaStep(n.Body); ok {
			return term.Binder{Kind: n.Kind, Bound: n.Bound, Body: newBody}, true
		}
		return t, false

	case term.App:
		if newFunc, ok := BetaStep(n.Func); ok {
			return term.App{Func: newFunc, Arg: n.Arg}, true
		}
		if lam, ok := n.Func.(term.Binder); ok && lam.Kind == term.LambdaBinder {
			return contract(lam, n.Arg), true
		}
		if newArg, ok := BetaStep(n.Arg); ok {
			return term.App{Func: n.Func, Arg: newArg}, true
		}
		return t, false

	case term.Ref:
		args := n.Args
		for i, a := range args {
			if newA, ok := BetaStep(a); ok {
				out := make([]term.Term, len(args))
				copy(out, args)
				out[i] = newA
				return n.WithArgs(out), true
			}
		}
		return t, false

	default:
		return t, false
	}
}

// contract performs the single beta contraction (λx:τ.body) arg ->
// body[x := arg].
func contract(lam term.Binder, arg term.Term) term.Term {
	return term.Subst(lam.Body, lam.Bound.Name, arg)
}

// BetaNormalize iterates BetaStep until it returns false. Termination
// is guaranteed only for well-typed terms (strong normalization of
// CoC); it is the caller's responsibility to supply one.
func BetaNormalize(t term.Term) term.Term {
	for {
		next, ok := BetaStep(t)
		if !ok {
			return t
		}
		t = next
	}
}
