package term

import "github.com/tallentype/pts/internal/ptserr"

// AsBinder destructures t into its Binder shape, or returns a
// ptserr.BadTerm fatal if t is not a Lambda or Product (spec.md §4.2).
func AsBinder(t Term) (Binder, error) {
	b, ok := t.(Binder)
	if !ok {
		return Binder{}, ptserr.New(ptserr.BadTerm, t, "expected a binder (lambda or product)")
	}
	return b, nil
}

// AsApp destructures t into its App shape, or returns a ptserr.BadTerm
// fatal if t is not an Application.
func AsApp(t Term) (App, error) {
	a, ok := t.(App)
	if !ok {
		return App{}, ptserr.New(ptserr.BadTerm, t, "expected an application")
	}
	return a, nil
}

// AsRef destructures t into its Ref shape, or returns a
// ptserr.NotReference fatal if t is not a Reference.
func AsRef(t Term) (Ref, error) {
	r, ok := t.(Ref)
	if !ok {
		return Ref{}, ptserr.New(ptserr.NotReference, t, "expected a reference")
	}
	return r, nil
}
