// Package stdlib is a small prelude of illustrative declarations built
// on top of internal/term and internal/env — not part of the core, but
// the kind of fixture set a CoC kernel's CLI and tests ship alongside
// it. The boolean, pair and Church-numeral encodings mirror the
// teacher's hand-written combinator library (combinators.go), re-cast
// as named Definitions instead of bare Go term literals so delta
// reduction has something realistic to unfold.
package stdlib

import (
	"fmt"

	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/term"
)

func star() term.Term { return term.SortTerm{Sort: term.Star} }
func v(n string) term.Term { return term.Variable{Name: n} }

// Prelude builds an Environment pre-populated with Church-numeral
// arithmetic encodings (as Definitions) and two arithmetic Specials
// (Add, IsZero) that compute directly on Church numerals rather than
// unfolding their full combinator expansion — the host-computation
// shortcut the teacher's primality.go takes for the same reason
// (Miller-Rabin over unary Church numerals is otherwise far too slow
// to beta-reduce through).
func Prelude() *env.Environment {
	e := env.New()
	e.Register(trueDef())
	e.Register(falseDef())
	e.Register(pairDef())
	e.Register(firstDef())
	e.Register(secondDef())
	for n := 0; n <= 9; n++ {
		e.Register(churchNumeralDef(n))
	}
	e.Register(addSpecial())
	e.Register(isZeroSpecial())
	return e
}

// TRUE := λx:*.λy:*.x
func trueDef() env.Decl {
	body := term.NewLambda("x", star(), term.NewLambda("y", star(), v("x")))
	return env.NewDefinition("TRUE", nil, body)
}

// FALSE := λx:*.λy:*.y
func falseDef() env.Decl {
	body := term.NewLambda("x", star(), term.NewLambda("y", star(), v("y")))
	return env.NewDefinition("FALSE", nil, body)
}

// PAIR := λx:*.λy:*.λf:*.f x y
func pairDef() env.Decl {
	body := term.NewLambda("x", star(), term.NewLambda("y", star(), term.NewLambda("f", star(),
		term.NewAppN(v("f"), v("x"), v("y")))))
	return env.NewDefinition("PAIR", nil, body)
}

// FIRST := λp:*.p TRUE
func firstDef() env.Decl {
	body := term.NewLambda("p", star(), term.NewApp(v("p"), term.NewRef("TRUE")))
	return env.NewDefinition("FIRST", nil, body)
}

// SECOND := λp:*.p FALSE
func secondDef() env.Decl {
	body := term.NewLambda("p", star(), term.NewApp(v("p"), term.NewRef("FALSE")))
	return env.NewDefinition("SECOND", nil, body)
}

// churchNumeralDef builds `N` := λf:*.λx:*.f (f (... (f x))) with f
// applied n times, registered under its decimal name (e.g. "3").
func churchNumeralDef(n int) env.Decl {
	var body term.Term = v("x")
	for i := 0; i < n; i++ {
		body = term.NewApp(v("f"), body)
	}
	full := term.NewLambda("f", star(), term.NewLambda("x", star(), body))
	return env.NewDefinition(fmt.Sprintf("%d", n), nil, full)
}

// ChurchNumeralValue decodes a beta-normal Church numeral term back
// into a Go int by counting its nested f-applications. Returns false
// if t is not of the expected λf.λx. f (f ... x) shape.
func ChurchNumeralValue(t term.Term) (int, bool) {
	outer, ok := t.(term.Binder)
	if !ok || !term.IsLambda(outer) {
		return 0, false
	}
	inner, ok := outer.Body.(term.Binder)
	if !ok || !term.IsLambda(inner) {
		return 0, false
	}
	f, x := outer.Bound.Name, inner.Bound.Name

	count := 0
	cur := inner.Body
	for {
		if vr, ok := cur.(term.Variable); ok && vr.Name == x {
			return count, true
		}
		app, ok := cur.(term.App)
		if !ok {
			return 0, false
		}
		fn, ok := app.Func.(term.Variable)
		if !ok || fn.Name != f {
			return 0, false
		}
		count++
		cur = app.Arg
	}
}
