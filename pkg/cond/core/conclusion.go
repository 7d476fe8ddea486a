package core

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/fluentcond/pkg/cond"
)

// Conclusion is the terminal stage of every chain shape. It is single-use and
// is not meant to be shared between goroutines; if it is, exactly one of the
// racing terminal calls evaluates it.
type Conclusion[T, R any] struct {
	id        uuid.UUID
	condition cond.Condition
	parameter cond.Lazy[T]
	happy     Branch[T, R]
	used      atomic.Uintptr
}

// New binds a condition, a parameter and the happy path. Nothing is evaluated.
func New[T, R any](condition cond.Condition, parameter cond.Lazy[T], happy Branch[T, R]) *Conclusion[T, R] {
	cond.MustBeSet(condition != nil, "condition")
	cond.MustBeSet(parameter != nil, "parameter")
	cond.MustBeSet(happy != nil, "happy path")

	return &Conclusion[T, R]{
		id:        uuid.New(),
		condition: condition,
		parameter: parameter,
		happy:     happy,
	}
}

// NoParameter is the parameter of chains built without one
func NoParameter() cond.Lazy[cond.Unit] {
	return cond.Const(cond.Unit{})
}

func (c *Conclusion[T, R]) ID() uuid.UUID {
	return c.id
}

// Conclude evaluates the chain with negative as the fallback.
// Panics with cond.ErrAlreadyConcluded when called on a concluded chain.
func (c *Conclusion[T, R]) Conclude(negative Branch[T, R]) Outcome[R] {
	out, ok := c.TryConclude(negative)
	if !ok {
		panic(cond.ErrAlreadyConcluded)
	}
	return out
}

// TryConclude evaluates the chain with negative as the fallback.
// On a concluded chain it evaluates nothing and returns an outcome carrying
// cond.ErrAlreadyConcluded, and false.
func (c *Conclusion[T, R]) TryConclude(negative Branch[T, R]) (Outcome[R], bool) {
	cond.MustBeSet(negative != nil, "fallback")

	if c.used.Add(1) != 1 {
		return Outcome[R]{id: c.id, err: cond.ErrAlreadyConcluded}, false
	}
	return c.evaluate(negative), true
}

func (c *Conclusion[T, R]) evaluate(negative Branch[T, R]) Outcome[R] {
	param := cond.Memo(c.parameter)

	taken, branch := Happy, c.happy
	if !c.condition() {
		taken, branch = Fallback, negative
	}

	result, err := branch(param)

	return Outcome[R]{
		id:          c.id,
		concludedAt: time.Now().UTC(),
		result:      result,
		err:         err,
		taken:       taken,
	}
}
