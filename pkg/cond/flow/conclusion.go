package flow

import (
	"github.com/google/uuid"
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
)

var (
	_ cond.Throwing                 = (*VoidConclusion)(nil)
	_ cond.ReturningOrThrowing[int] = (*Conclusion[int])(nil)
)

// VoidConclusion concludes a chain whose happy path is an action
type VoidConclusion struct {
	c *core.Conclusion[cond.Unit, cond.Unit]
}

func (v *VoidConclusion) ID() uuid.UUID {
	return v.c.ID()
}

// OrElse runs action when the condition does not hold
func (v *VoidConclusion) OrElse(action func()) {
	v.c.Conclude(core.Run[cond.Unit](action))
}

func (v *VoidConclusion) OrElseThrow(factory func() error) error {
	out, _ := v.TryConclude(core.Throw[cond.Unit, cond.Unit](factory))
	return out.Err()
}

func (v *VoidConclusion) OrElseThrowMsg(factory func(msg string) error, msg string) error {
	out, _ := v.TryConclude(core.ThrowMsg[cond.Unit, cond.Unit](factory, msg))
	return out.Err()
}

// OrElseThrowE returns err when the condition does not hold.
// err is built by the caller before the condition is read, and a nil err
// panics at this call whatever the condition.
func (v *VoidConclusion) OrElseThrowE(err error) error {
	out, _ := v.TryConclude(core.ThrowErr[cond.Unit, cond.Unit](err))
	return out.Err()
}

// Conclude evaluates the chain with an arbitrary fallback and returns the full outcome.
// Panics with cond.ErrAlreadyConcluded when the chain was already concluded.
func (v *VoidConclusion) Conclude(negative core.Branch[cond.Unit, cond.Unit]) core.Outcome[cond.Unit] {
	return v.c.Conclude(negative)
}

// TryConclude is Conclude without the panic. On a concluded chain it evaluates
// nothing and returns an outcome carrying cond.ErrAlreadyConcluded, and false.
func (v *VoidConclusion) TryConclude(negative core.Branch[cond.Unit, cond.Unit]) (core.Outcome[cond.Unit], bool) {
	return v.c.TryConclude(negative)
}

// Conclusion concludes a chain whose happy path produces an R
type Conclusion[R any] struct {
	c *core.Conclusion[cond.Unit, R]
}

func (r *Conclusion[R]) ID() uuid.UUID {
	return r.c.ID()
}

// OrElse returns value when the condition does not hold
func (r *Conclusion[R]) OrElse(value R) R {
	return r.c.Conclude(core.Value[cond.Unit](value)).Result()
}

// OrElseGet calls supplier when the condition does not hold
func (r *Conclusion[R]) OrElseGet(supplier func() R) R {
	return r.c.Conclude(core.Supply[cond.Unit](supplier)).Result()
}

func (r *Conclusion[R]) OrElseThrow(factory func() error) (R, error) {
	out, _ := r.TryConclude(core.Throw[cond.Unit, R](factory))
	return out.Unpack()
}

func (r *Conclusion[R]) OrElseThrowMsg(factory func(msg string) error, msg string) (R, error) {
	out, _ := r.TryConclude(core.ThrowMsg[cond.Unit, R](factory, msg))
	return out.Unpack()
}

// OrElseThrowE returns err when the condition does not hold.
// err is built by the caller before the condition is read, and a nil err
// panics at this call whatever the condition.
func (r *Conclusion[R]) OrElseThrowE(err error) (R, error) {
	out, _ := r.TryConclude(core.ThrowErr[cond.Unit, R](err))
	return out.Unpack()
}

// Conclude evaluates the chain with an arbitrary fallback and returns the full outcome.
// Panics with cond.ErrAlreadyConcluded when the chain was already concluded.
func (r *Conclusion[R]) Conclude(negative core.Branch[cond.Unit, R]) core.Outcome[R] {
	return r.c.Conclude(negative)
}

// TryConclude is Conclude without the panic. On a concluded chain it evaluates
// nothing and returns an outcome carrying cond.ErrAlreadyConcluded, and false.
func (r *Conclusion[R]) TryConclude(negative core.Branch[cond.Unit, R]) (core.Outcome[R], bool) {
	return r.c.TryConclude(negative)
}
