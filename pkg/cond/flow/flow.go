package flow

import (
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
)

// Flow is the first stage of a chain without a parameter
type Flow struct {
	condition cond.Condition
}

// When starts a chain from a plain boolean
func When(condition bool) Flow {
	return WhenFunc(cond.ConstCondition(condition))
}

// WhenFunc starts a chain from a deferred condition
func WhenFunc(condition cond.Condition) Flow {
	cond.MustBeSet(condition != nil, "condition")
	return Flow{condition: condition}
}

// Then binds the action run when the condition holds
func (f Flow) Then(action func()) *VoidConclusion {
	return &VoidConclusion{
		c: core.New(f.condition, core.NoParameter(), core.Run[cond.Unit](action)),
	}
}

// ThenThrow evaluates the condition now. It returns the error built from msg
// when the condition holds and nil otherwise. A factory returning nil on the
// true branch panics, since nil would read as "condition did not hold".
func (f Flow) ThenThrow(factory func(msg string) error, msg string) error {
	cond.MustBeSet(factory != nil, "error factory")
	if f.condition() {
		err := factory(msg)
		cond.MustBeSet(err != nil, "error from factory")
		return err
	}
	return nil
}

// ThenReturn binds the value returned when the condition holds
func ThenReturn[R any](f Flow, value R) *Conclusion[R] {
	return ThenGet(f, func() R { return value })
}

// ThenGet binds the supplier called when the condition holds
func ThenGet[R any](f Flow, supplier func() R) *Conclusion[R] {
	return &Conclusion[R]{
		c: core.New(f.condition, core.NoParameter(), core.Supply[cond.Unit](supplier)),
	}
}
