// Package trace renders a step-by-step record of Normalize's decisions
// — which of the three reducers fired at each step — the same way the
// teacher's diagram.go renders a beta-reduction sequence as a picture,
// extended here to the three-reducer interleaving this core adds over
// plain lambda calculus.
package trace

import (
	"fmt"
	"strings"

	"github.com/tallentype/pts/internal/env"
	"github.com/tallentype/pts/internal/ptserr"
	"github.com/tallentype/pts/internal/reduce"
	"github.com/tallentype/pts/internal/term"
)

// Kind names which reducer produced a Step.
type Kind string

const (
	SpecialKind Kind = "special"
	DeltaKind   Kind = "delta"
	BetaKind    Kind = "beta"
)

// Step records one combined-normalization step.
type Step struct {
	Kind   Kind
	Before term.Term
	After  term.Term
}

// Trace is the full sequence of steps Normalize took to reach a term's
// normal form (or its fuel/failure point).
type Trace struct {
	Steps []Step
	Final term.Term
	Err   error
}

// Run re-implements Normalize's priority loop (spec.md §4.7) while
// recording every step, so a caller can inspect or render the
// reduction sequence instead of only its endpoint.
func Run(fetcher env.Fetcher, ctx env.Context, t term.Term, opts ...reduce.Option) Trace {
	tr := Trace{}
	current := t
	steps := 0
	o := reduce.Options{}
	for _, opt := range opts {
		opt(&o)
	}
	for {
		if o.Fuel > 0 && steps >= o.Fuel {
			tr.Final = current
			tr.Err = ptserr.New(ptserr.FuelExhausted, current, "exceeded %d combined reduction steps", o.Fuel)
			return tr
		}
		steps++

		if next, ok, err := reduce.SpecialStep(fetcher, ctx, current); err != nil {
			tr.Final, tr.Err = current, err
			return tr
		} else if ok {
			tr.Steps = append(tr.Steps, Step{Kind: SpecialKind, Before: current, After: next})
			current = next
			continue
		}
		if next, ok, err := reduce.DeltaStep(fetcher, current, false); err != nil {
			tr.Final, tr.Err = current, err
			return tr
		} else if ok {
			tr.Steps = append(tr.Steps, Step{Kind: DeltaKind, Before: current, After: next})
			current = next
			continue
		}
		if next, ok := reduce.BetaStep(current); ok {
			tr.Steps = append(tr.Steps, Step{Kind: BetaKind, Before: current, After: next})
			current = next
			continue
		}
		tr.Final = current
		return tr
	}
}

// Render formats the trace as a numbered list of "[kind] before" lines,
// each followed by an indented "-> after" line, ending with either the
// error or the final term as "normal form: ...".
func (tr Trace) Render() string {
	var b strings.Builder
	for i, s := range tr.Steps {
		fmt.Fprintf(&b, "%2d. [%s] %s\n    -> %s\n", i+1, s.Kind, s.Before, s.After)
	}
	if tr.Err != nil {
		fmt.Fprintf(&b, "error: %v\n", tr.Err)
		return b.String()
	}
	fmt.Fprintf(&b, "normal form: %s\n", tr.Final)
	return b.String()
}
