package given

import (
	"github.com/google/uuid"
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
)

var (
	_ cond.Throwing                    = (*ConsumerConclusion[string])(nil)
	_ cond.ReturningOrThrowing[string] = (*FunctionConclusion[int, string])(nil)
)

// ConsumerConclusion concludes a chain whose happy path consumes the parameter
type ConsumerConclusion[T any] struct {
	c *core.Conclusion[T, cond.Unit]
}

func (v *ConsumerConclusion[T]) ID() uuid.UUID {
	return v.c.ID()
}

// OrElse calls consumer with the parameter when the condition does not hold
func (v *ConsumerConclusion[T]) OrElse(consumer func(T)) {
	v.c.Conclude(core.Consume(consumer))
}

// OrElseDo runs action when the condition does not hold, without evaluating the parameter
func (v *ConsumerConclusion[T]) OrElseDo(action func()) {
	v.c.Conclude(core.Run[T](action))
}

func (v *ConsumerConclusion[T]) OrElseThrow(factory func() error) error {
	out, _ := v.TryConclude(core.Throw[T, cond.Unit](factory))
	return out.Err()
}

func (v *ConsumerConclusion[T]) OrElseThrowMsg(factory func(msg string) error, msg string) error {
	out, _ := v.TryConclude(core.ThrowMsg[T, cond.Unit](factory, msg))
	return out.Err()
}

// OrElseThrowE returns err when the condition does not hold.
// err is built by the caller before the condition is read, and a nil err
// panics at this call whatever the condition.
func (v *ConsumerConclusion[T]) OrElseThrowE(err error) error {
	out, _ := v.TryConclude(core.ThrowErr[T, cond.Unit](err))
	return out.Err()
}

// Conclude evaluates the chain with an arbitrary fallback and returns the full outcome.
// Panics with cond.ErrAlreadyConcluded when the chain was already concluded.
func (v *ConsumerConclusion[T]) Conclude(negative core.Branch[T, cond.Unit]) core.Outcome[cond.Unit] {
	return v.c.Conclude(negative)
}

// TryConclude is Conclude without the panic. On a concluded chain it evaluates
// nothing and returns an outcome carrying cond.ErrAlreadyConcluded, and false.
func (v *ConsumerConclusion[T]) TryConclude(negative core.Branch[T, cond.Unit]) (core.Outcome[cond.Unit], bool) {
	return v.c.TryConclude(negative)
}

// FunctionConclusion concludes a chain whose happy path produces an R
type FunctionConclusion[T, R any] struct {
	c *core.Conclusion[T, R]
}

func (r *FunctionConclusion[T, R]) ID() uuid.UUID {
	return r.c.ID()
}

// OrElseApply applies fn to the parameter when the condition does not hold
func (r *FunctionConclusion[T, R]) OrElseApply(fn func(T) R) R {
	return r.c.Conclude(core.Apply(fn)).Result()
}

// OrElseGet calls supplier when the condition does not hold, without evaluating the parameter
func (r *FunctionConclusion[T, R]) OrElseGet(supplier func() R) R {
	return r.c.Conclude(core.Supply[T](supplier)).Result()
}

// OrElse returns value when the condition does not hold
func (r *FunctionConclusion[T, R]) OrElse(value R) R {
	return r.c.Conclude(core.Value[T](value)).Result()
}

func (r *FunctionConclusion[T, R]) OrElseThrow(factory func() error) (R, error) {
	out, _ := r.TryConclude(core.Throw[T, R](factory))
	return out.Unpack()
}

func (r *FunctionConclusion[T, R]) OrElseThrowMsg(factory func(msg string) error, msg string) (R, error) {
	out, _ := r.TryConclude(core.ThrowMsg[T, R](factory, msg))
	return out.Unpack()
}

// OrElseThrowE returns err when the condition does not hold.
// err is built by the caller before the condition is read, and a nil err
// panics at this call whatever the condition.
func (r *FunctionConclusion[T, R]) OrElseThrowE(err error) (R, error) {
	out, _ := r.TryConclude(core.ThrowErr[T, R](err))
	return out.Unpack()
}

// Conclude evaluates the chain with an arbitrary fallback and returns the full outcome.
// Panics with cond.ErrAlreadyConcluded when the chain was already concluded.
func (r *FunctionConclusion[T, R]) Conclude(negative core.Branch[T, R]) core.Outcome[R] {
	return r.c.Conclude(negative)
}

// TryConclude is Conclude without the panic. On a concluded chain it evaluates
// nothing and returns an outcome carrying cond.ErrAlreadyConcluded, and false.
func (r *FunctionConclusion[T, R]) TryConclude(negative core.Branch[T, R]) (core.Outcome[R], bool) {
	return r.c.TryConclude(negative)
}
