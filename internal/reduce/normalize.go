package reduce

import (
	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/term"
)

// Options configures a normalization run. The zero value is the
// spec-conformant default: unbounded steps.
type Options struct {
	// Fuel caps the number of combined reduction steps. Zero means
	// unbounded (spec.md §5, §9 "Open question: step-count bound").
	Fuel int
}

// Option mutates Options; constructed via the With* functions below.
type Option func(*Options)

// WithFuel imposes a step-count cap. Exhausting it surfaces as a
// recoverable ptserr.FuelExhausted error rather than looping forever.
func WithFuel(n int) Option {
	return func(o *Options) { o.Fuel = n }
}

func buildOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Normalize drives special, delta and beta reduction to a combined
// normal form, in the priority order of spec.md §4.7: one special
// step, else one delta step, else one beta step, else return. Specials
// are tried first because they may insert definitions; delta before
// beta prevents needless pre-unfolding explosion.
func Normalize(fetcher env.Fetcher, ctx env.Context, t term.Term, opts ...Option) (term.Term, error) {
	o := buildOptions(opts...)
	steps := 0
	for {
		if o.Fuel > 0 && steps >= o.Fuel {
			return t, ptserr.New(ptserr.FuelExhausted, t, "exceeded %d combined reduction steps", o.Fuel)
		}
		steps++

		if next, ok, err := SpecialStep(fetcher, ctx, t); err != nil {
			return t, err
		} else if ok {
			t = next
			continue
		}
		if next, ok, err := DeltaStep(fetcher, t, false); err != nil {
			return t, err
		} else if ok {
			t = next
			continue
		}
		if next, ok := BetaStep(t); ok {
			t = next
			continue
		}
		return t, nil
	}
}

// BetaEq decides definitional equality: normalize both terms under
// env and ctx, then compare with AlphaEq. This is the decision
// procedure the external type checker uses for conversion.
func BetaEq(fetcher env.Fetcher, ctx env.Context, t1, t2 term.Term, opts ...Option) (bool, error) {
	n1, err := Normalize(fetcher, ctx, t1, opts...)
	if err != nil {
		return false, err
	}
	n2, err := Normalize(fetcher, ctx, t2, opts...)
	if err != nil {
		return false, err
	}
	return term.AlphaEq(n1, n2), nil
}

// BetaEqTerms decides definitional equality with no environment and no
// context: the (t1, t2) arity of BetaEq from spec.md §4.7.
func BetaEqTerms(t1, t2 term.Term) bool {
	return term.AlphaEq(BetaNormalize(t1), BetaNormalize(t2))
}

// NormalizeTerm is the (t) arity of Normalize: empty environment,
// empty context. It degrades to plain beta-normalization, since with
// no environment delta and special never fire.
func NormalizeTerm(t term.Term) term.Term {
	return BetaNormalize(t)
}

// NormalizeWithEnv is the (env, t) arity of Normalize: empty context.
func NormalizeWithEnv(fetcher env.Fetcher, t term.Term, opts ...Option) (term.Term, error) {
	return Normalize(fetcher, nil, t, opts...)
}
