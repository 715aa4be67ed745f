package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/term"
)

func TestFetchNotFound(t *testing.T) {
	e := env.New()
	_, found := e.Fetch("missing")
	assert.False(t, found)
}

func TestFetchFound(t *testing.T) {
	e := env.New()
	e.Register(env.NewAxiom("ax", nil))
	d, found := e.Fetch("ax")
	assert.True(t, found)
	assert.Equal(t, env.AxiomTag, d.Tag)
}

func TestLayeredLookupFallsThroughToParent(t *testing.T) {
	parent := env.New()
	parent.Register(env.NewAxiom("global", nil))

	child := env.NewChild(parent)
	child.Register(env.NewAxiom("local", nil))

	_, foundGlobal := child.Fetch("global")
	assert.True(t, foundGlobal)

	_, foundLocal := parent.Fetch("local")
	assert.False(t, foundLocal, "parent must not see child declarations")
}

func TestChildShadowsParent(t *testing.T) {
	parent := env.New()
	parent.Register(env.NewDefinition("n", nil, term.SortTerm{Sort: term.Star}))

	child := env.NewChild(parent)
	child.Register(env.NewDefinition("n", nil, term.SortTerm{Sort: term.Box}))

	d, _ := child.Fetch("n")
	assert.Equal(t, term.SortTerm{Sort: term.Box}, d.Body)
}

func TestFlattenCollapsesLayers(t *testing.T) {
	parent := env.New()
	parent.Register(env.NewAxiom("a", nil))
	child := env.NewChild(parent)
	child.Register(env.NewAxiom("b", nil))

	flat := child.Flatten()
	_, foundA := flat.Fetch("a")
	_, foundB := flat.Fetch("b")
	assert.True(t, foundA)
	assert.True(t, foundB)
}

func TestContextLookupInnermostWins(t *testing.T) {
	ctx := env.Context{}.
		Extend("x", term.SortTerm{Sort: term.Star}).
		Extend("x", term.SortTerm{Sort: term.Box})

	typ, found := ctx.Lookup("x")
	assert.True(t, found)
	assert.Equal(t, term.SortTerm{Sort: term.Box}, typ)
}

func TestContextExtendDoesNotMutateOriginal(t *testing.T) {
	base := env.Context{}
	extended := base.Extend("x", term.SortTerm{Sort: term.Star})
	assert.Len(t, base, 0)
	assert.Len(t, extended, 1)
}
