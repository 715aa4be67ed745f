// Package env implements the definition environment and declaration
// registry of spec.md §3/§4.3: an immutable-at-reduction-time mapping
// from name to Declaration, plus the binding Context used by Special
// reducers.
package env

import "github.com/tallentype/pts/internal/term"

// Tag identifies which of the four declaration kinds a Decl carries.
type Tag int

const (
	// DefinitionTag: delta unfolds to the instantiated body.
	DefinitionTag Tag = iota
	// TheoremTag: opaque once proved, never unfolded.
	TheoremTag
	// AxiomTag: never unfolded.
	AxiomTag
	// SpecialTag: reduces via a host function at special-reduction time.
	SpecialTag
)

func (t Tag) String() string {
	switch t {
	case DefinitionTag:
		return "definition"
	case TheoremTag:
		return "theorem"
	case AxiomTag:
		return "axiom"
	case SpecialTag:
		return "special"
	default:
		return "unknown"
	}
}

// Context is the ordered sequence of (name, type) bindings representing
// the scope a term is being reduced in. It is consulted only by
// Special host functions.
type Context []term.Param

// Lookup returns the declared type of name in the context, innermost
// binding first, and whether it was found.
func (c Context) Lookup(name string) (term.Term, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Name == name {
			return c[i].Type, true
		}
	}
	return nil, false
}

// Extend returns a new Context with (name, typ) appended as the
// innermost binding; c is left untouched.
func (c Context) Extend(name string, typ term.Term) Context {
	out := make(Context, len(c), len(c)+1)
	copy(out, c)
	return append(out, term.Param{Name: name, Type: typ})
}

// SpecialFunc is the host-side computation a Special declaration
// reduces through. It receives the fetcher it was invoked under (so a
// special may itself consult other declarations), the current binding
// context, and exactly Arity arguments (Special reduction, unlike
// Definition reduction, never calls f under-applied). Implementations
// must document whether they perform observable effects (spec.md §5).
type SpecialFunc func(env Fetcher, ctx Context, args ...term.Term) (term.Term, error)

// Decl is a named declaration: a Definition, Theorem, Axiom, or
// Special, per spec.md §3.
type Decl struct {
	Name   string
	Tag    Tag
	Arity  int
	Params []term.Param

	// Body is the Definition's unfolding target. Nil means corrupt.
	Body term.Term
	// Proof is the Theorem's certificate. Nil means unproven.
	Proof term.Term
	// Host is the Special's computation. Nil means corrupt.
	Host SpecialFunc
}

// NewDefinition builds a Definition declaration.
func NewDefinition(name string, params []term.Param, body term.Term) Decl {
	return Decl{Name: name, Tag: DefinitionTag, Arity: len(params), Params: params, Body: body}
}

// NewTheorem builds a Theorem declaration. proof may be nil to model
// an as-yet-unproven theorem.
func NewTheorem(name string, params []term.Param, proof term.Term) Decl {
	return Decl{Name: name, Tag: TheoremTag, Arity: len(params), Params: params, Proof: proof}
}

// NewAxiom builds an Axiom declaration.
func NewAxiom(name string, params []term.Param) Decl {
	return Decl{Name: name, Tag: AxiomTag, Arity: len(params), Params: params}
}

// NewSpecial builds a Special declaration. host may be nil to model a
// corrupt registration.
func NewSpecial(name string, params []term.Param, host SpecialFunc) Decl {
	return Decl{Name: name, Tag: SpecialTag, Arity: len(params), Params: params, Host: host}
}

// Fetcher is the lookup surface the reducers depend on. Environment
// satisfies it with layered lookup; Local satisfies it with a single
// flat map, per spec.md §4.3's "local mode" for parse-time resolution
// against a scratch environment.
type Fetcher interface {
	Fetch(name string) (Decl, bool)
}

// Environment is the immutable-at-reduction-time registry of
// declarations. Lookup is layered: a miss in this Environment falls
// through to Parent, if any, which is how a per-file scratch
// environment sits in front of the global library during elaboration.
// The zero value is an empty, parentless environment. Ownership of an
// Environment belongs to its caller; reduction never mutates it.
type Environment struct {
	decls  map[string]Decl
	Parent *Environment
}

// New builds an empty Environment with no parent.
func New() *Environment {
	return &Environment{decls: make(map[string]Decl)}
}

// NewChild builds an empty Environment whose lookups fall through to
// parent on a miss.
func NewChild(parent *Environment) *Environment {
	return &Environment{decls: make(map[string]Decl), Parent: parent}
}

// Register adds or replaces a declaration in this layer. It returns
// the Environment for chaining, following the registry-builder style
// of a type checker's own symbol table construction.
func (e *Environment) Register(d Decl) *Environment {
	if e.decls == nil {
		e.decls = make(map[string]Decl)
	}
	e.decls[d.Name] = d
	return e
}

// Fetch implements Fetcher, consulting this layer before Parent.
func (e *Environment) Fetch(name string) (Decl, bool) {
	if e == nil {
		return Decl{}, false
	}
	if d, ok := e.decls[name]; ok {
		return d, true
	}
	return e.Parent.Fetch(name)
}

// Names returns every declaration name visible from this Environment,
// including inherited ones, in no particular order.
func (e *Environment) Names() []string {
	seen := map[string]struct{}{}
	for layer := e; layer != nil; layer = layer.Parent {
		for n := range layer.decls {
			seen[n] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	return names
}

// Flatten collapses every layer of e into a single map-backed Local,
// child layers shadowing parent ones. The delta reducer's local mode
// (spec.md §4.3) consults the result instead of e directly: a scratch
// parse-time environment reuses the same Fetcher machinery without
// paying for layered lookup on every reference.
func (e *Environment) Flatten() Local {
	out := Local{}
	var layers []*Environment
	for layer := e; layer != nil; layer = layer.Parent {
		layers = append(layers, layer)
	}
	for i := len(layers) - 1; i >= 0; i-- {
		for n, d := range layers[i].decls {
			out[n] = d
		}
	}
	return out
}

// Local is a lightweight, map-only Fetcher. The delta reducer's local
// mode consults a Local instead of a layered Environment: the
// rationale (spec.md §4.3) is that parse-time resolution against a
// scratch environment reuses the same fetch machinery without paying
// for Environment's bookkeeping.
type Local map[string]Decl

// Fetch implements Fetcher.
func (l Local) Fetch(name string) (Decl, bool) {
	d, ok := l[name]
	return d, ok
}
