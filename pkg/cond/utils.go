package cond

// MustBeSet panics when a callback handed to a chain is nil. A nil callback
// is a programming error and is reported at the call that received it.
func MustBeSet(set bool, name string) {
	if !set {
		panic("cond: nil " + name)
	}
}
