package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallentype/pts/internal/term"
)

// Law 3: substitution identity, subst(t, x, x) = t up to alpha.
func TestSubstIdentity(t *testing.T) {
	body := term.NewApp(term.Variable{Name: "x"}, term.Variable{Name: "y"})
	lam := term.NewLambda("x", star(), body)

	got := term.Subst(lam, "x", term.Variable{Name: "x"})
	assert.True(t, term.AlphaEq(lam, got))
}

func TestSubstReplacesFreeOccurrence(t *testing.T) {
	got := term.Subst(term.Variable{Name: "x"}, "x", term.Variable{Name: "y"})
	assert.Equal(t, term.Variable{Name: "y"}, got)
}

func TestSubstLeavesBoundOccurrenceAlone(t *testing.T) {
	// (λx. x)[x := y] == λx. x, since x is re-bound.
	lam := term.NewLambda("x", star(), term.Variable{Name: "x"})
	got := term.Subst(lam, "x", term.Variable{Name: "y"})
	assert.True(t, term.AlphaEq(lam, got))
}

// Adversarial capture scenario: substituting a replacement whose free
// variables collide with a bound name forces alpha-renaming.
func TestSubstAvoidsCapture(t *testing.T) {
	// (λx. x z)[z := x], the body of λz. λx. x z contracted against x,
	// must rename the bound x.
	inner := term.NewLambda("x", star(), term.NewApp(term.Variable{Name: "x"}, term.Variable{Name: "z"}))
	outer := term.NewLambda("z", star(), inner)

	contracted := term.Subst(inner, "z", term.Variable{Name: "x"})

	result, ok := contracted.(term.Binder)
	assert.True(t, ok)
	assert.NotEqual(t, "x", result.Bound.Name, "bound x must be renamed to avoid capturing the free x")

	expected := term.NewLambda(result.Bound.Name, star(),
		term.NewApp(term.Variable{Name: result.Bound.Name}, term.Variable{Name: "x"}))
	assert.True(t, term.AlphaEq(contracted, expected))

	_ = outer
}

func TestSubstMapParallelNotSequential(t *testing.T) {
	// Parallel substitution {x := y, y := x} on (x y) swaps, it does not
	// chain through an intermediate state.
	body := term.NewApp(term.Variable{Name: "x"}, term.Variable{Name: "y"})
	got := term.SubstMap(body, map[string]term.Term{
		"x": term.Variable{Name: "y"},
		"y": term.Variable{Name: "x"},
	})
	want := term.NewApp(term.Variable{Name: "y"}, term.Variable{Name: "x"})
	assert.True(t, term.AlphaEq(got, want))
}

// Law 4 (substitution commutes with non-capturing renaming): renaming a
// bound variable to a fresh name and then substituting into the body
// gives an alpha-equal result to substituting directly.
func TestSubstCommutesWithNonCapturingRenaming(t *testing.T) {
	body := term.NewApp(term.Variable{Name: "x"}, term.Variable{Name: "free"})
	lam := term.NewLambda("x", star(), body)

	direct := term.Subst(lam, "free", term.Variable{Name: "repl"})

	renamed := term.NewLambda("w", star(), term.Subst(body, "x", term.Variable{Name: "w"}))
	viaRename := term.Subst(renamed, "free", term.Variable{Name: "repl"})

	assert.True(t, term.AlphaEq(direct, viaRename))
}

func TestFreshNamePicksFirstUnusedVariant(t *testing.T) {
	avoid := term.NewNameSet("x", "x'")
	assert.Equal(t, "x''", term.FreshName("x", avoid))

	assert.Equal(t, "y", term.FreshName("y", term.NewNameSet()))
}
