package term

// Subst produces a term equal to t with free occurrences of v replaced
// by replacement, avoiding capture. It is the single-variable case of
// SubstMap.
func Subst(t Term, v string, replacement Term) Term {
	return SubstMap(t, map[string]Term{v: replacement})
}

// SubstMap applies a parallel substitution: every free occurrence of
// every key in sigma is replaced by its value simultaneously (not
// iteratively), avoiding capture at every binder encountered.
//
// The capture-avoidance rule (spec.md §4.2): at a binder (kind,(x,τ),body),
// let σ be sigma restricted to FreeVars(body) \ {x}.
//   - τ is substituted under σ unconditionally.
//   - if x is itself a key of σ being substituted away, x re-binds it:
//     stop substituting in body for that key (but other keys still apply).
//   - else if x occurs free in any replacement in σ, rename the bound x
//     to a fresh x' (not free in body nor in any replacement) and
//     substitute σ ∪ {x ↦ x'} into the body.
//   - else substitute σ into body directly.
func SubstMap(t Term, sigma map[string]Term) Term {
	if len(sigma) == 0 {
		return t
	}
	switch n := t.(type) {
	case Variable:
		if repl, ok := sigma[n.Name]; ok {
			return repl
		}
		return n
	case SortTerm:
		return n
	case App:
		return App{Func: SubstMap(n.Func, sigma), Arg: SubstMap(n.Arg, sigma)}
	case Ref:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = SubstMap(a, sigma)
		}
		return n.WithArgs(args)
	case Binder:
		return substBinder(n, sigma)
	default:
		return t
	}
}

func substBinder(b Binder, sigma map[string]Term) Term {
	bodyFree := FreeVars(b.Body)
	bodyFree.Remove(b.Bound.Name)

	restricted := make(map[string]Term, len(sigma))
	for k, v := range sigma {
		if bodyFree.Has(k) {
			restricted[k] = v
		}
	}

	newDomain := SubstMap(b.Bound.Type, sigma)

	if _, rebound := restricted[b.Bound.Name]; rebound {
		// x is re-bound by this binder: drop it from the substitution
		// applied to the body, keep everything else.
		delete(restricted, b.Bound.Name)
		return Binder{Kind: b.Kind, Bound: Param{Name: b.Bound.Name, Type: newDomain}, Body: SubstMap(b.Body, restricted)}
	}

	if capturesAny(b.Bound.Name, restricted) {
		avoid := bodyFree.Clone()
		for _, repl := range restricted {
			avoid = avoid.Union(FreeVars(repl))
		}
		freshX := FreshName(b.Bound.Name, avoid)
		renamedBody := Subst(b.Body, b.Bound.Name, Variable{Name: freshX})
		withX := make(map[string]Term, len(restricted)+1)
		for k, v := range restricted {
			withX[k] = v
		}
		withX[b.Bound.Name] = Variable{Name: freshX}
		return Binder{Kind: b.Kind, Bound: Param{Name: freshX, Type: newDomain}, Body: SubstMap(renamedBody, withX)}
	}

	return Binder{Kind: b.Kind, Bound: Param{Name: b.Bound.Name, Type: newDomain}, Body: SubstMap(b.Body, restricted)}
}

func capturesAny(x string, sigma map[string]Term) bool {
	for _, repl := range sigma {
		if FreeVars(repl).Has(x) {
			return true
		}
	}
	return false
}
