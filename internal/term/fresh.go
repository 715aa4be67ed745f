package term

// FreshName returns the first variant of base (base, base', base'', ...)
// that is not a member of avoid.
func FreshName(base string, avoid NameSet) string {
	candidate := base
	for avoid.Has(candidate) {
		candidate += "'"
	}
	return candidate
}
