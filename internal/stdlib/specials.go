package stdlib

import (
	"fmt"

	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/reduce"
	"github.com/tallentype/pts/internal/term"
)

// resolveNumeral fully normalizes arg under fetcher before decoding it
// as a Church numeral. Special reduction alone does not unfold the
// Reference to a numeral's Definition (specials only recurse into
// special-reducible arguments, spec.md §4.6), so Add and IsZero must
// do that unfolding themselves before they can read the value through.
func resolveNumeral(fetcher env.Fetcher, name string, arg term.Term) (int, error) {
	normal, err := reduce.Normalize(fetcher, nil, arg)
	if err != nil {
		return 0, err
	}
	n, ok := ChurchNumeralValue(normal)
	if !ok {
		return 0, ptserr.ForDecl(ptserr.NotReference, name, arg, "argument does not normalize to a Church numeral")
	}
	return n, nil
}

// addSpecial registers Add, arity 2, computing m+n directly on Church
// numerals rather than beta-reducing an addition combinator. It
// is pure: it performs no observable effect beyond its return value,
// which is the bar spec.md §5 sets for a documented-safe special.
func addSpecial() env.Decl {
	params := []term.Param{{Name: "m", Type: star()}, {Name: "n", Type: star()}}
	return env.NewSpecial("Add", params, func(fetcher env.Fetcher, _ env.Context, args ...term.Term) (term.Term, error) {
		m, err := resolveNumeral(fetcher, "Add", args[0])
		if err != nil {
			return nil, err
		}
		n, err := resolveNumeral(fetcher, "Add", args[1])
		if err != nil {
			return nil, err
		}
		return term.NewRef(fmt.Sprintf("%d", m+n)), nil
	})
}

// isZeroSpecial registers IsZero, arity 1, returning the Reference to
// TRUE or FALSE according to whether its Church-numeral argument is 0.
// Also pure.
func isZeroSpecial() env.Decl {
	params := []term.Param{{Name: "n", Type: star()}}
	return env.NewSpecial("IsZero", params, func(fetcher env.Fetcher, _ env.Context, args ...term.Term) (term.Term, error) {
		n, err := resolveNumeral(fetcher, "IsZero", args[0])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return term.NewRef("TRUE"), nil
		}
		return term.NewRef("FALSE"), nil
	})
}
