// Package term defines the term algebra of the pure type system: the
// tagged sum of Variable, Sort, Lambda, Product, Application and
// Reference, together with the structural predicates over it.
package term

import (
	"fmt"
	"strings"
)

// Sort is a universe level. Two sorts suffice for this system.
type Sort int

const (
	// Star is the sort of types ("*").
	Star Sort = iota
	// Box is the sort of kinds ("□").
	Box
)

func (s Sort) String() string {
	if s == Star {
		return "*"
	}
	return "□"
}

// BinderKind distinguishes Lambda from Product; both share the same
// (var, domain, body) shape and are the only binder forms in the
// algebra.
type BinderKind int

const (
	// LambdaBinder marks a term abstraction λx:τ.body.
	LambdaBinder BinderKind = iota
	// ProductBinder marks a dependent function type Πx:τ.body.
	ProductBinder
)

func (k BinderKind) String() string {
	if k == LambdaBinder {
		return "λ"
	}
	return "Π"
}

// Term is the tagged sum described in spec.md §3. Every variant
// implements Term; type switches on the concrete type are the
// idiomatic way to inspect a term, but the predicates below cover the
// common cases.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Variable is a free or bound occurrence of a name.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}

func (v Variable) String() string { return v.Name }

// SortTerm wraps a Sort as a Term.
type SortTerm struct {
	Sort Sort
}

func (SortTerm) isTerm() {}

func (s SortTerm) String() string { return s.Sort.String() }

// Param is a single (name, type) pair, used both as a binder's bound
// variable/domain and as a declaration's formal parameter.
type Param struct {
	Name string
	Type Term
}

// Binder is the shared shape of Lambda and Product: a kind, a bound
// variable with its domain term, and a body term.
type Binder struct {
	Kind   BinderKind
	Bound  Param
	Body   Term
}

func (Binder) isTerm() {}

func (b Binder) String() string {
	return fmt.Sprintf("%s%s:%s.%s", b.Kind, b.Bound.Name, b.Bound.Type, b.Body)
}

// NewLambda constructs a term abstraction λ(name:typ).body.
func NewLambda(name string, typ, body Term) Binder {
	return Binder{Kind: LambdaBinder, Bound: Param{Name: name, Type: typ}, Body: body}
}

// NewProduct constructs a dependent product Π(name:typ).body.
func NewProduct(name string, typ, body Term) Binder {
	return Binder{Kind: ProductBinder, Bound: Param{Name: name, Type: typ}, Body: body}
}

// App is a strictly binary application. Multi-argument applications
// are represented as nested, left-associative Apps.
type App struct {
	Func Term
	Arg  Term
}

func (App) isTerm() {}

func (a App) String() string {
	funcStr := a.Func.String()
	if IsBinder(a.Func) {
		funcStr = "(" + funcStr + ")"
	}
	argStr := a.Arg.String()
	if IsApp(a.Arg) || IsBinder(a.Arg) {
		argStr = "(" + argStr + ")"
	}
	return funcStr + " " + argStr
}

// NewApp builds App(fn, arg).
func NewApp(fn, arg Term) App { return App{Func: fn, Arg: arg} }

// NewAppN folds App over a left-associative spine fn arg0 arg1 ... argN.
func NewAppN(fn Term, args ...Term) Term {
	result := fn
	for _, a := range args {
		result = App{Func: result, Arg: a}
	}
	return result
}

// Ref is an applied occurrence of a named declaration: the name plus
// the (possibly empty, possibly partial) sequence of arguments already
// supplied to it. Unlike App, a Ref's arguments are stored as a flat
// slice rather than a nested spine, because arity checks need the
// count directly.
type Ref struct {
	Name string
	Args []Term
}

func (Ref) isTerm() {}

func (r Ref) String() string {
	if len(r.Args) == 0 {
		return r.Name
	}
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = a.String()
		if IsApp(a) || IsBinder(a) {
			parts[i] = "(" + parts[i] + ")"
		}
	}
	return r.Name + " " + strings.Join(parts, " ")
}

// NewRef builds a Reference to name applied to args.
func NewRef(name string, args ...Term) Ref {
	return Ref{Name: name, Args: args}
}

// WithArgs returns a copy of r with its argument list replaced.
func (r Ref) WithArgs(args []Term) Ref {
	return Ref{Name: r.Name, Args: args}
}

// Predicates over the term algebra (spec.md §4.1).

// IsLambda reports whether t is a term abstraction.
func IsLambda(t Term) bool {
	b, ok := t.(Binder)
	return ok && b.Kind == LambdaBinder
}

// IsProduct reports whether t is a dependent product.
func IsProduct(t Term) bool {
	b, ok := t.(Binder)
	return ok && b.Kind == ProductBinder
}

// IsBinder reports whether t is a Lambda or a Product.
func IsBinder(t Term) bool {
	_, ok := t.(Binder)
	return ok
}

// IsApp reports whether t is an Application.
func IsApp(t Term) bool {
	_, ok := t.(App)
	return ok
}

// IsRef reports whether t is a Reference.
func IsRef(t Term) bool {
	_, ok := t.(Ref)
	return ok
}

// IsVariable reports whether t is a Variable.
func IsVariable(t Term) bool {
	_, ok := t.(Variable)
	return ok
}

// IsSort reports whether t is a Sort.
func IsSort(t Term) bool {
	_, ok := t.(SortTerm)
	return ok
}
