// Package genterm generates random, well-scoped terms for the
// property tests described in spec.md §8. It is type-directed only in
// the weak sense of tracking which names are in scope at each point —
// it does not attempt to generate well-typed terms, since the laws
// exercised with it (alpha-equivalence, substitution) hold regardless
// of typability.
package genterm

import (
	"math/rand"

	"github.com/tallentype/pts/internal/term"
)

// Generator produces random terms over a fixed pool of free variable
// names, bounded to maxDepth.
type Generator struct {
	rng      *rand.Rand
	freeVars []string
	maxDepth int
	counter  int
}

// New builds a Generator seeded deterministically by seed, drawing free
// occurrences from freeVars when a generated leaf is not bound locally.
func New(seed int64, freeVars []string, maxDepth int) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), freeVars: freeVars, maxDepth: maxDepth}
}

// Term generates a random term in the given scope (names already
// bound by an enclosing binder).
func (g *Generator) Term(scope []string) term.Term {
	return g.term(scope, g.maxDepth)
}

func (g *Generator) term(scope []string, depth int) term.Term {
	if depth <= 0 {
		return g.leaf(scope)
	}
	switch g.rng.Intn(4) {
	case 0:
		return g.leaf(scope)
	case 1:
		name := g.freshBinderName()
		dom := g.term(scope, depth-1)
		body := g.term(append(scope, name), depth-1)
		return term.NewLambda(name, dom, body)
	case 2:
		fn := g.term(scope, depth-1)
		arg := g.term(scope, depth-1)
		return term.NewApp(fn, arg)
	default:
		return g.leaf(scope)
	}
}

func (g *Generator) leaf(scope []string) term.Term {
	pool := append(append([]string{}, scope...), g.freeVars...)
	if len(pool) == 0 {
		return term.SortTerm{Sort: term.Star}
	}
	if g.rng.Intn(5) == 0 {
		if g.rng.Intn(2) == 0 {
			return term.SortTerm{Sort: term.Star}
		}
		return term.SortTerm{Sort: term.Box}
	}
	return term.Variable{Name: pool[g.rng.Intn(len(pool))]}
}

func (g *Generator) freshBinderName() string {
	names := [...]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	name := names[g.counter%len(names)]
	g.counter++
	return name
}
