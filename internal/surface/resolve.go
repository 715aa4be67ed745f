package surface

import (
	"fmt"

	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/term"
)

// scope is the list of names bound by enclosing binders or formal
// parameters, innermost last. A bare identifier resolves to a
// Variable if it is in scope, otherwise to a Reference — the same
// distinction the core algebra draws between the two name spaces.
type scope []string

func (s scope) has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

// Resolve turns a parsed File into an Environment holding every
// declaration it names, plus the resolved query term if the file had
// one. Declarations are resolved top to bottom, so a declaration may
// reference only the ones written before it — there is no forward
// reference or mutual recursion in the surface syntax, matching the
// core algebra's environment, which never looks a declaration up
// before it has been registered.
func Resolve(f *File) (*env.Environment, term.Term, error) {
	e := env.New()
	arities := map[string]int{}

	for _, d := range f.Decls {
		switch {
		case d.Definition != nil:
			params, body, err := resolveParamsAndBody(arities, d.Definition.Params, d.Definition.Body)
			if err != nil {
				return nil, nil, fmt.Errorf("def %s: %w", d.Definition.Name, err)
			}
			e.Register(env.NewDefinition(d.Definition.Name, params, body))
			arities[d.Definition.Name] = len(params)

		case d.Theorem != nil:
			// The declared type is parsed and resolved so a malformed
			// theorem statement is still rejected at this stage, but
			// Decl itself carries no Type field: the core only needs
			// Proof to decide whether the theorem is opaque or fatal
			// (spec.md §3), and type-checking the proof against the
			// statement is outside this package's scope.
			params, _, err := resolveParamsAndBody(arities, d.Theorem.Params, d.Theorem.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("theorem %s: %w", d.Theorem.Name, err)
			}
			var proof term.Term
			if d.Theorem.Proof != nil {
				sc := paramScope(params)
				proof, err = resolveTerm(sc, arities, d.Theorem.Proof)
				if err != nil {
					return nil, nil, fmt.Errorf("theorem %s proof: %w", d.Theorem.Name, err)
				}
			}
			e.Register(env.NewTheorem(d.Theorem.Name, params, proof))
			arities[d.Theorem.Name] = len(params)

		case d.Axiom != nil:
			params, _, err := resolveParamsAndBody(arities, d.Axiom.Params, d.Axiom.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("axiom %s: %w", d.Axiom.Name, err)
			}
			e.Register(env.NewAxiom(d.Axiom.Name, params))
			arities[d.Axiom.Name] = len(params)
		}
	}

	var query term.Term
	if f.Query != nil {
		var err error
		query, err = resolveTerm(nil, arities, f.Query)
		if err != nil {
			return nil, nil, fmt.Errorf("query: %w", err)
		}
	}
	return e, query, nil
}

func paramScope(params []term.Param) scope {
	s := make(scope, len(params))
	for i, p := range params {
		s[i] = p.Name
	}
	return s
}

// resolveParamsAndBody resolves a declaration's formal parameter list
// (each domain type seen under the names bound so far, so later
// parameters may depend on earlier ones) and then its trailing
// term (body, type, ...) under the full parameter scope.
func resolveParamsAndBody(arities map[string]int, decls []*ParamDecl, body *Term) ([]term.Param, term.Term, error) {
	var params []term.Param
	var sc scope
	for _, pd := range decls {
		typ, err := resolveTerm(sc, arities, pd.Type)
		if err != nil {
			return nil, nil, fmt.Errorf("parameter %s: %w", pd.Name, err)
		}
		params = append(params, term.Param{Name: pd.Name, Type: typ})
		sc = append(sc, pd.Name)
	}
	if body == nil {
		return params, nil, nil
	}
	resolved, err := resolveTerm(sc, arities, body)
	if err != nil {
		return nil, nil, err
	}
	return params, resolved, nil
}

// resolveTerm resolves an application spine: the head atom, then each
// argument atom, splitting the argument list between a Reference's own
// Args (up to its declared arity) and surrounding Application nodes
// for anything beyond it.
func resolveTerm(sc scope, arities map[string]int, t *Term) (term.Term, error) {
	head, err := resolveAtom(sc, arities, t.Head)
	if err != nil {
		return nil, err
	}
	args := make([]term.Term, len(t.Args))
	for i, a := range t.Args {
		args[i], err = resolveAtom(sc, arities, a)
		if err != nil {
			return nil, err
		}
	}
	if len(args) == 0 {
		return head, nil
	}

	if ref, ok := head.(term.Ref); ok && len(ref.Args) == 0 {
		arity, known := arities[ref.Name]
		if known {
			n := arity
			if n > len(args) {
				n = len(args)
			}
			result := term.Term(ref.WithArgs(args[:n]))
			for _, extra := range args[n:] {
				result = term.NewApp(result, extra)
			}
			return result, nil
		}
	}

	result := head
	for _, a := range args {
		result = term.NewApp(result, a)
	}
	return result, nil
}

func resolveAtom(sc scope, arities map[string]int, a *Atom) (term.Term, error) {
	switch {
	case a.Sort == "*":
		return term.SortTerm{Sort: term.Star}, nil
	case a.Sort == "Kind":
		return term.SortTerm{Sort: term.Box}, nil
	case a.Lambda != nil:
		domain, err := resolveTerm(sc, arities, a.Lambda.Domain)
		if err != nil {
			return nil, err
		}
		body, err := resolveTerm(append(sc, a.Lambda.Name), arities, a.Lambda.Body)
		if err != nil {
			return nil, err
		}
		return term.NewLambda(a.Lambda.Name, domain, body), nil
	case a.Product != nil:
		domain, err := resolveTerm(sc, arities, a.Product.Domain)
		if err != nil {
			return nil, err
		}
		body, err := resolveTerm(append(sc, a.Product.Name), arities, a.Product.Body)
		if err != nil {
			return nil, err
		}
		return term.NewProduct(a.Product.Name, domain, body), nil
	case a.Name != "":
		if sc.has(a.Name) {
			return term.Variable{Name: a.Name}, nil
		}
		return term.NewRef(a.Name), nil
	case a.Paren != nil:
		return resolveTerm(sc, arities, a.Paren)
	default:
		return nil, fmt.Errorf("empty atom")
	}
}
