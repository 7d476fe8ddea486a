package core

import "github.com/ib-77/fluentcond/pkg/cond"

// Branch is the canonical shape of both sides of a chain. It receives the
// lazy parameter and decides itself whether to force it.
type Branch[T, R any] func(param cond.Lazy[T]) (R, error)

// Apply runs fn on the parameter value
func Apply[T, R any](fn func(T) R) Branch[T, R] {
	cond.MustBeSet(fn != nil, "function")
	return func(param cond.Lazy[T]) (R, error) {
		return fn(param()), nil
	}
}

// Consume runs fn on the parameter value and produces no result
func Consume[T any](fn func(T)) Branch[T, cond.Unit] {
	cond.MustBeSet(fn != nil, "consumer")
	return func(param cond.Lazy[T]) (cond.Unit, error) {
		fn(param())
		return cond.Unit{}, nil
	}
}

// Supply ignores the parameter and returns what fn produces
func Supply[T, R any](fn func() R) Branch[T, R] {
	cond.MustBeSet(fn != nil, "supplier")
	return func(cond.Lazy[T]) (R, error) {
		return fn(), nil
	}
}

// Value returns v without forcing the parameter
func Value[T, R any](v R) Branch[T, R] {
	return Supply[T](func() R { return v })
}

// Run runs action without forcing the parameter
func Run[T any](action func()) Branch[T, cond.Unit] {
	cond.MustBeSet(action != nil, "action")
	return Supply[T](func() cond.Unit {
		action()
		return cond.Unit{}
	})
}

// Throw returns the error built by factory. The factory runs only when the
// branch is taken and must not return nil.
func Throw[T, R any](factory func() error) Branch[T, R] {
	cond.MustBeSet(factory != nil, "error factory")
	return func(cond.Lazy[T]) (R, error) {
		var zero R
		err := factory()
		cond.MustBeSet(err != nil, "error from factory")
		return zero, err
	}
}

// ThrowMsg is Throw with a message-taking factory
func ThrowMsg[T, R any](factory func(msg string) error, msg string) Branch[T, R] {
	cond.MustBeSet(factory != nil, "error factory")
	return Throw[T, R](func() error { return factory(msg) })
}

// ThrowErr returns err as is. err already exists, so whatever its
// construction did has happened before the branch decision.
func ThrowErr[T, R any](err error) Branch[T, R] {
	cond.MustBeSet(err != nil, "error")
	return Throw[T, R](func() error { return err })
}
