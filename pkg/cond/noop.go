package cond

// DoNothing returns a fresh action that does nothing, for "do nothing" branches.
func DoNothing() func() {
	return func() {}
}

// DoNothingWith returns a fresh consumer that ignores its argument.
func DoNothingWith[T any]() func(T) {
	return func(T) {}
}
