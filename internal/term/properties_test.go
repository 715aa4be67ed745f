package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallentype/pts/internal/genterm"
	"github.com/tallentype/pts/internal/term"
)

// Randomly generated terms exercising the algebraic laws of spec.md §8
// that hold independent of typability: alpha-reflexivity (law 1),
// substitution identity (law 3), and vacuous substitution (a
// consequence of law 4, substitution commuting with renaming of a
// variable that never occurs).
func TestPropertyAlphaReflexiveOnRandomTerms(t *testing.T) {
	gen := genterm.New(1, []string{"p", "q", "r"}, 4)
	for i := 0; i < 200; i++ {
		tm := gen.Term(nil)
		assert.True(t, term.AlphaEq(tm, tm), "not reflexive: %s", tm)
	}
}

func TestPropertySubstIdentityOnRandomTerms(t *testing.T) {
	gen := genterm.New(2, []string{"p", "q", "r"}, 4)
	for i := 0; i < 200; i++ {
		tm := gen.Term(nil)
		got := term.Subst(tm, "p", term.Variable{Name: "p"})
		assert.True(t, term.AlphaEq(tm, got), "subst(t,p,p) != t for %s", tm)
	}
}

func TestPropertyVacuousSubstitutionOnRandomTerms(t *testing.T) {
	gen := genterm.New(3, []string{"p", "q", "r"}, 4)
	for i := 0; i < 200; i++ {
		tm := gen.Term(nil)
		if term.FreeVars(tm).Has("zzz_unused") {
			continue
		}
		got := term.Subst(tm, "zzz_unused", term.Variable{Name: "anything"})
		assert.True(t, term.AlphaEq(tm, got), "substituting a name absent from t must be a no-op for %s", tm)
	}
}
