package cond

import "sync"

// Unit is the result type of chains that produce no value.
type Unit = struct{}

// Condition is a deferred boolean test. A chain evaluates it at conclusion time only.
type Condition func() bool

// Lazy is a deferred value of type T.
type Lazy[T any] func() T

// ConstCondition wraps a plain boolean. The value was already computed by the
// caller, so laziness degenerates to a constant here.
func ConstCondition(b bool) Condition {
	return func() bool { return b }
}

// Const wraps an already computed value into a Lazy.
func Const[T any](v T) Lazy[T] {
	return func() T { return v }
}

// Memo returns a Lazy that calls l at most once and replays its value afterwards.
func Memo[T any](l Lazy[T]) Lazy[T] {
	return sync.OnceValue(l)
}
