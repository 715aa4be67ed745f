// Package ptserr defines the two classes of failure the core can
// surface (spec.md §7): structural bugs, which are fatal and carry the
// offending term and diagnostic fields, and soft mismatches, which are
// never errors — they come back as an ordinary (term, false) pair from
// the reducer that hit them. The fatal class lives here, together with
// FuelExhausted, the one recoverable code.
package ptserr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies which structural-bug class a Fatal wraps, following
// the tagged-code convention of the surface compiler this core was
// extracted from (errors.codes in the surface toolchain).
type Code string

const (
	// NotRedex: a beta contraction was requested on an application that
	// is not a redex. No reducer in this module returns it: BetaStep
	// leaves a non-redex unchanged.
	NotRedex Code = "NOT_REDEX"
	// NotReference: a term was not the Reference shape the operation
	// needs: AsRef got a non-Reference, delta reduction reached a
	// Special's reference, or a prelude special's argument did not
	// normalize to a Church numeral.
	NotReference Code = "NOT_REFERENCE"
	// TooManyArgs: a Reference carries more arguments than its arity.
	TooManyArgs Code = "TOO_MANY_ARGS"
	// InsufficientArgs: a Special was invoked under-applied.
	InsufficientArgs Code = "INSUFFICIENT_ARGS"
	// CorruptDefinition: a Definition declaration has no body.
	CorruptDefinition Code = "CORRUPT_DEFINITION"
	// UnprovenTheorem: a Theorem declaration has no proof term.
	UnprovenTheorem Code = "UNPROVEN_THEOREM"
	// CorruptSpecial: a Special declaration has no host function.
	CorruptSpecial Code = "CORRUPT_SPECIAL"
	// BadTerm: a binder destructor was applied to a non-binder term.
	BadTerm Code = "BAD_TERM"
	// FuelExhausted: a configured step-count cap was reached before a
	// normal form was found. Unlike every other code here this is
	// recoverable, not a programming-error indicator; callers that
	// impose no cap will never see it (spec.md §5, §9).
	FuelExhausted Code = "FUEL_EXHAUSTED"
)

// stringer is satisfied by term.Term without ptserr importing the term
// package, which would create an import cycle (term's binder
// destructors raise ptserr.Fatal values).
type stringer interface {
	String() string
}

// Fatal is a structural failure: the caller (or a corrupt environment)
// handed the core a shape it cannot process. Apart from FuelExhausted,
// Fatal values are never expected to be handled within a proof session
// (spec.md §7); they indicate a programming error upstream.
type Fatal struct {
	Code   Code
	Term   stringer
	Name   string // declaration name, when relevant
	Detail string
	cause  error
}

// New builds a Fatal for code, decorated with term (nil if not
// applicable) and a printf-style detail message.
func New(code Code, term stringer, format string, args ...any) *Fatal {
	f := &Fatal{Code: code, Term: term, Detail: fmt.Sprintf(format, args...)}
	f.cause = errors.WithStack(errors.New(string(code)))
	return f
}

// ForDecl builds a Fatal that additionally names the offending
// declaration.
func ForDecl(code Code, name string, term stringer, format string, args ...any) *Fatal {
	f := New(code, term, format, args...)
	f.Name = name
	return f
}

func (f *Fatal) Error() string {
	if f.Term == nil {
		if f.Name != "" {
			return fmt.Sprintf("%s: %s (declaration %q)", f.Code, f.Detail, f.Name)
		}
		return fmt.Sprintf("%s: %s", f.Code, f.Detail)
	}
	if f.Name != "" {
		return fmt.Sprintf("%s: %s (declaration %q, term %s)", f.Code, f.Detail, f.Name, f.Term)
	}
	return fmt.Sprintf("%s: %s (term %s)", f.Code, f.Detail, f.Term)
}

// StackTrace exposes the stack captured at construction time via
// github.com/pkg/errors, so an embedding type checker can report
// exactly where in its own pipeline a core invariant broke.
func (f *Fatal) StackTrace() errors.StackTrace {
	type tracer interface{ StackTrace() errors.StackTrace }
	if t, ok := f.cause.(tracer); ok {
		return t.StackTrace()
	}
	return nil
}

// Unwrap lets errors.As/errors.Is see through the pkg/errors wrapping.
func (f *Fatal) Unwrap() error { return f.cause }

// Is reports whether err is a Fatal of the given code.
func Is(err error, code Code) bool {
	var f *Fatal
	return errors.As(err, &f) && f.Code == code
}
