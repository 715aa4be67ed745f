package reduce

import (
	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/term"
)

// SpecialStep performs at most one step of special reduction. It
// descends structurally exactly as DeltaStep does — reducing a
// Reference's arguments before attempting to fire the reference itself
// — but invokes the declaration's host function instead of
// instantiating a body (spec.md §4.6).
func SpecialStep(fetcher env.Fetcher, ctx env.Context, t term.Term) (term.Term, bool, error) {
	switch n := t.(type) {
	case term.Binder:
		innerCtx := ctx.Extend(n.Bound.Name, n.Bound.Type)
		if newDomain, ok, err := SpecialStep(fetcher, ctx, n.Bound.Type); err != nil || ok {
			return term.Binder{Kind: n.Kind, Bound: term.Param{Name: n.Bound.Name, Type: newDomain}, Body: n.Body}, ok, err
		}
		newBody, ok, err := SpecialStep(fetcher, innerCtx, n.Body)
		return term.Binder{Kind: n.Kind, Bound: n.Bound, Body: newBody}, ok, err

	case term.App:
		if newFunc, ok, err := SpecialStep(fetcher, ctx, n.Func); err != nil || ok {
			return term.App{Func: newFunc, Arg: n.Arg}, ok, err
		}
		newArg, ok, err := SpecialStep(fetcher, ctx, n.Arg)
		return term.App{Func: n.Func, Arg: newArg}, ok, err

	case term.Ref:
		args := n.Args
		for i, a := range args {
			if newA, ok, err := SpecialStep(fetcher, ctx, a); err != nil || ok {
				if err != nil {
					return t, false, err
				}
				out := make([]term.Term, len(args))
				copy(out, args)
				out[i] = newA
				return n.WithArgs(out), true, nil
			}
		}
		return specialReduceRef(fetcher, ctx, n)

	default:
		return t, false, nil
	}
}

func specialReduceRef(fetcher env.Fetcher, ctx env.Context, r term.Ref) (term.Term, bool, error) {
	decl, found := fetcher.Fetch(r.Name)
	if !found || decl.Tag != env.SpecialTag {
		return r, false, nil
	}

	if len(r.Args) > decl.Arity {
		return r, false, ptserr.ForDecl(ptserr.TooManyArgs, r.Name, r, "got %d args for arity %d", len(r.Args), decl.Arity)
	}
	if len(r.Args) < decl.Arity {
		// Unlike Definitions, specials are not eta-expanded: they
		// demand all their arguments before computing (spec.md §4.6).
		return r, false, ptserr.ForDecl(ptserr.InsufficientArgs, r.Name, r, "got %d args for arity %d", len(r.Args), decl.Arity)
	}
	if decl.Host == nil {
		return r, false, ptserr.ForDecl(ptserr.CorruptSpecial, r.Name, r, "special has no host function")
	}

	result, err := decl.Host(fetcher, ctx, r.Args...)
	if err != nil {
		return r, false, err
	}
	return result, true, nil
}

// SpecialNormalize iterates SpecialStep to a fixpoint.
func SpecialNormalize(fetcher env.Fetcher, ctx env.Context, t term.Term) (term.Term, error) {
	for {
		next, ok, err := SpecialStep(fetcher, ctx, t)
		if err != nil {
			return t, err
		}
		if !ok {
			return t, nil
		}
		t = next
	}
}
