package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallentype/pts/internal/reduce"
	"github.com/tallentype/pts/internal/term"
)

func star() term.Term { return term.SortTerm{Sort: term.Star} }
func box() term.Term  { return term.SortTerm{Sort: term.Box} }
func v(n string) term.Term { return term.Variable{Name: n} }

// Scenario 1: beta-reduce ((λx:*.x) y) -> y.
func TestBetaStepScenario1(t *testing.T) {
	lam := term.NewLambda("x", star(), v("x"))
	input := term.NewApp(lam, v("y"))

	got, reduced := reduce.BetaStep(input)
	require.True(t, reduced)
	assert.True(t, term.AlphaEq(got, v("y")))
}

// Scenario 2: beta-reduce ((λz:*. λx:*. (x z)) x) -> (λx':*. (x' x)),
// bound x renamed to avoid capture.
func TestBetaStepScenario2CaptureAvoidance(t *testing.T) {
	inner := term.NewLambda("x", star(), term.NewApp(v("x"), v("z")))
	outer := term.NewLambda("z", star(), inner)
	input := term.NewApp(outer, v("x"))

	got, reduced := reduce.BetaStep(input)
	require.True(t, reduced)

	b, ok := got.(term.Binder)
	require.True(t, ok)
	assert.NotEqual(t, "x", b.Bound.Name)

	want := term.NewLambda(b.Bound.Name, star(), term.NewApp(v(b.Bound.Name), v("x")))
	assert.True(t, term.AlphaEq(got, want))
}

// Scenario 3: beta-normalize (λy:((λx:□.x) *). ((λx:*.x) y)) -> (λy:*.y).
func TestBetaNormalizeScenario3(t *testing.T) {
	domain := term.NewApp(term.NewLambda("x", box(), v("x")), star())
	body := term.NewApp(term.NewLambda("x", star(), v("x")), v("y"))
	input := term.NewLambda("y", domain, body)

	got := reduce.BetaNormalize(input)
	want := term.NewLambda("y", star(), v("y"))
	assert.True(t, term.AlphaEq(got, want))
}

func TestBetaStepOnNonRedexIsUnchanged(t *testing.T) {
	got, reduced := reduce.BetaStep(v("x"))
	assert.False(t, reduced)
	assert.Equal(t, v("x"), got)
}

func TestBetaStepBinderFirstExploresDomain(t *testing.T) {
	redexDomain := term.NewApp(term.NewLambda("x", star(), v("x")), v("y"))
	lam := term.NewLambda("z", redexDomain, v("z"))

	got, reduced := reduce.BetaStep(lam)
	require.True(t, reduced)

	b := got.(term.Binder)
	assert.True(t, term.AlphaEq(b.Bound.Type, v("y")), "domain should reduce before body is touched")
}

func TestBetaStepReducesAtMostOneRedex(t *testing.T) {
	// (λx.x) ((λy.y) z) has two redexes; one step must fire exactly one.
	inner := term.NewApp(term.NewLambda("y", star(), v("y")), v("z"))
	outer := term.NewApp(term.NewLambda("x", star(), v("x")), inner)

	got, reduced := reduce.BetaStep(outer)
	require.True(t, reduced)
	// Leftmost-outermost: the outer redex fires first, leaving the
	// still-unreduced inner application as the whole result.
	assert.True(t, term.AlphaEq(got, inner))
}

func TestBetaStepReferenceReducesArgsLeftToRight(t *testing.T) {
	redexA := term.NewApp(term.NewLambda("x", star(), v("x")), v("a"))
	ref := term.NewRef("f", redexA, v("b"))

	got, reduced := reduce.BetaStep(ref)
	require.True(t, reduced)

	r := got.(term.Ref)
	assert.True(t, term.AlphaEq(r.Args[0], v("a")))
	assert.True(t, term.AlphaEq(r.Args[1], v("b")))
}
