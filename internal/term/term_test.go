package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallentype/pts/internal/term"
)

func TestPredicates(t *testing.T) {
	lam := term.NewLambda("x", term.SortTerm{Sort: term.Star}, term.Variable{Name: "x"})
	prod := term.NewProduct("x", term.SortTerm{Sort: term.Star}, term.SortTerm{Sort: term.Star})
	app := term.NewApp(lam, term.Variable{Name: "y"})
	ref := term.NewRef("f", term.Variable{Name: "a"})
	v := term.Variable{Name: "x"}
	s := term.SortTerm{Sort: term.Box}

	assert.True(t, term.IsLambda(lam))
	assert.False(t, term.IsLambda(prod))
	assert.True(t, term.IsProduct(prod))
	assert.True(t, term.IsBinder(lam))
	assert.True(t, term.IsBinder(prod))
	assert.False(t, term.IsBinder(app))
	assert.True(t, term.IsApp(app))
	assert.True(t, term.IsRef(ref))
	assert.True(t, term.IsVariable(v))
	assert.True(t, term.IsSort(s))
}

func TestNewAppN(t *testing.T) {
	f := term.Variable{Name: "f"}
	a := term.Variable{Name: "a"}
	b := term.Variable{Name: "b"}
	got := term.NewAppN(f, a, b)

	want := term.NewApp(term.NewApp(f, a), b)
	assert.True(t, term.AlphaEq(got, want))
}

func TestFreeVarsExact(t *testing.T) {
	// λx:*. (x y) has free vars {y}, not {x, y}.
	body := term.NewApp(term.Variable{Name: "x"}, term.Variable{Name: "y"})
	lam := term.NewLambda("x", term.SortTerm{Sort: term.Star}, body)

	fv := term.FreeVars(lam)
	assert.True(t, fv.Has("y"))
	assert.False(t, fv.Has("x"))
	assert.Len(t, fv, 1)
}

func TestFreeVarsDescendsIntoDomain(t *testing.T) {
	// Πx:y. x has free vars {y} from the domain even though x is bound.
	prod := term.NewProduct("x", term.Variable{Name: "y"}, term.Variable{Name: "x"})
	fv := term.FreeVars(prod)
	assert.True(t, fv.Has("y"))
	assert.False(t, fv.Has("x"))
}

func TestFreeVarsReferenceArgsOnly(t *testing.T) {
	// A Reference's own name is not a variable; only its args contribute.
	ref := term.NewRef("plus", term.Variable{Name: "a"}, term.Variable{Name: "b"})
	fv := term.FreeVars(ref)
	assert.True(t, fv.Has("a"))
	assert.True(t, fv.Has("b"))
	assert.False(t, fv.Has("plus"))
}

func TestAsBinderRejectsNonBinder(t *testing.T) {
	_, err := term.AsBinder(term.Variable{Name: "x"})
	assert.Error(t, err)
}

func TestAsBinderAcceptsBinder(t *testing.T) {
	lam := term.NewLambda("x", term.SortTerm{Sort: term.Star}, term.Variable{Name: "x"})
	got, err := term.AsBinder(lam)
	assert.NoError(t, err)
	assert.Equal(t, term.LambdaBinder, got.Kind)
}
