package reduce

import (
	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/term"
)

// Instantiate builds the delta-contraction of a declaration's body
// against args, per spec.md §4.5. If len(args) exceeds len(params) it
// returns a ptserr.TooManyArgs fatal as its error; it does not panic.
// Callers (DeltaStep) are expected to have already checked the arity,
// so this case indicates a bug in the caller rather than a normal
// control-flow branch.
func Instantiate(params []term.Param, body term.Term, args []term.Term) (term.Term, error) {
	if len(args) > len(params) {
		return nil, ptserr.New(ptserr.TooManyArgs, body, "got %d args for %d params", len(args), len(params))
	}

	sigma := make(map[string]term.Term, len(args))
	for i, a := range args {
		sigma[params[i].Name] = a
	}

	leftover := params[len(args):]
	wrapped := body
	for i := len(leftover) - 1; i >= 0; i-- {
		p := leftover[i]
		wrapped = term.NewLambda(p.Name, p.Type, wrapped)
	}

	return term.SubstMap(wrapped, sigma), nil
}

// DeltaStep performs at most one step of delta reduction. local
// selects the lookup mode described in spec.md §4.3: false consults
// fetcher as given (typically a layered *env.Environment), true
// flattens it to a map-only env.Local first. When fetcher is already
// an env.Local, local has no effect.
func DeltaStep(fetcher env.Fetcher, t term.Term, local bool) (term.Term, bool, error) {
	if local {
		if e, ok := fetcher.(*env.Environment); ok {
			fetcher = e.Flatten()
		}
	}
	return deltaStep(fetcher, t)
}

func deltaStep(fetcher env.Fetcher, t term.Term) (term.Term, bool, error) {
	switch n := t.(type) {
	case term.Binder:
		if newDomain, ok, err := deltaStep(fetcher, n.Bound.Type); err != nil || ok {
			return term.Binder{Kind: n.Kind, Bound: term.Param{Name: n.Bound.Name, Type: newDomain}, Body: n.Body}, ok, err
		}
		newBody, ok, err := deltaStep(fetcher, n.Body)
		return term.Binder{Kind: n.Kind, Bound: n.Bound, Body: newBody}, ok, err

	case term.App:
		if newFunc, ok, err := deltaStep(fetcher, n.Func); err != nil || ok {
			return term.App{Func: newFunc, Arg: n.Arg}, ok, err
		}
		newArg, ok, err := deltaStep(fetcher, n.Arg)
		return term.App{Func: n.Func, Arg: newArg}, ok, err

	case term.Ref:
		args := n.Args
		for i, a := range args {
			if newA, ok, err := deltaStep(fetcher, a); err != nil || ok {
				if err != nil {
					return t, false, err
				}
				out := make([]term.Term, len(args))
				copy(out, args)
				out[i] = newA
				return n.WithArgs(out), true, nil
			}
		}
		return deltaReduceRef(fetcher, n)

	default:
		return t, false, nil
	}
}

// deltaReduceRef applies the per-tag delta policy of spec.md §4.5 to a
// Reference whose arguments are already delta-irreducible.
func deltaReduceRef(fetcher env.Fetcher, r term.Ref) (term.Term, bool, error) {
	decl, found := fetcher.Fetch(r.Name)
	if !found {
		// Silent: unknown reference is left alone, higher layers decide
		// (spec.md §4.8, §9 "Silent unknown reference").
		return r, false, nil
	}

	if len(r.Args) > decl.Arity {
		return r, false, ptserr.ForDecl(ptserr.TooManyArgs, r.Name, r, "got %d args for arity %d", len(r.Args), decl.Arity)
	}

	switch decl.Tag {
	case env.DefinitionTag:
		if decl.Body == nil {
			return r, false, ptserr.ForDecl(ptserr.CorruptDefinition, r.Name, r, "definition has no body")
		}
		result, err := Instantiate(decl.Params, decl.Body, r.Args)
		if err != nil {
			return r, false, err
		}
		return result, true, nil

	case env.TheoremTag:
		if decl.Proof == nil {
			return r, false, ptserr.ForDecl(ptserr.UnprovenTheorem, r.Name, r, "theorem has no proof")
		}
		// Opaque once proved: never unfolded (spec.md §4.5, §9).
		return r, false, nil

	case env.AxiomTag:
		return r, false, nil

	case env.SpecialTag:
		return r, false, ptserr.ForDecl(ptserr.NotReference, r.Name, r, "special must be reduced by the special reducer, not delta")

	default:
		return r, false, nil
	}
}

// DeltaNormalize iterates DeltaStep to a fixpoint against a (typically
// layered) environment.
func DeltaNormalize(fetcher env.Fetcher, t term.Term) (term.Term, error) {
	return deltaNormalize(fetcher, t, false)
}

// DeltaNormalizeLocal iterates DeltaStep to a fixpoint in local mode
// (spec.md §4.3, §4.7).
func DeltaNormalizeLocal(fetcher env.Fetcher, t term.Term) (term.Term, error) {
	return deltaNormalize(fetcher, t, true)
}

func deltaNormalize(fetcher env.Fetcher, t term.Term, local bool) (term.Term, error) {
	for {
		next, ok, err := DeltaStep(fetcher, t, local)
		if err != nil {
			return t, err
		}
		if !ok {
			return t, nil
		}
		t = next
	}
}
