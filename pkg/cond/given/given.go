package given

import (
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
)

// Parametrized holds a parameter waiting for its condition
type Parametrized[T any] struct {
	parameter cond.Lazy[T]
}

// Given starts a chain from a plain value
func Given[T any](parameter T) Parametrized[T] {
	return GivenFunc(cond.Const(parameter))
}

// GivenFunc starts a chain from a deferred value
func GivenFunc[T any](parameter cond.Lazy[T]) Parametrized[T] {
	cond.MustBeSet(parameter != nil, "parameter")
	return Parametrized[T]{parameter: parameter}
}

// When binds a plain boolean condition
func (p Parametrized[T]) When(condition bool) ParameterFlow[T] {
	return p.WhenFunc(cond.ConstCondition(condition))
}

// WhenFunc binds a deferred condition
func (p Parametrized[T]) WhenFunc(condition cond.Condition) ParameterFlow[T] {
	cond.MustBeSet(condition != nil, "condition")
	return ParameterFlow[T]{condition: condition, parameter: p.parameter}
}

// ParameterFlow is the stage of a parameterized chain that takes the happy path
type ParameterFlow[T any] struct {
	condition cond.Condition
	parameter cond.Lazy[T]
}

// Then binds the consumer called with the parameter when the condition holds
func (f ParameterFlow[T]) Then(consumer func(T)) *ConsumerConclusion[T] {
	return &ConsumerConclusion[T]{
		c: core.New(f.condition, f.parameter, core.Consume(consumer)),
	}
}

// ThenApply binds the function applied to the parameter when the condition holds
func ThenApply[T, R any](f ParameterFlow[T], fn func(T) R) *FunctionConclusion[T, R] {
	return then(f, core.Apply(fn))
}

// ThenGet binds a supplier; the parameter is not evaluated on the happy path
func ThenGet[T, R any](f ParameterFlow[T], supplier func() R) *FunctionConclusion[T, R] {
	return then(f, core.Supply[T](supplier))
}

// ThenReturn binds a plain value; the parameter is not evaluated on the happy path
func ThenReturn[T, R any](f ParameterFlow[T], value R) *FunctionConclusion[T, R] {
	return then(f, core.Value[T](value))
}

func then[T, R any](f ParameterFlow[T], happy core.Branch[T, R]) *FunctionConclusion[T, R] {
	return &FunctionConclusion[T, R]{
		c: core.New(f.condition, f.parameter, happy),
	}
}
