package flow_test

import (
	"errors"
	"fmt"

	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/flow"
)

func ExampleWhen() {
	flow.When(true).
		Then(func() { fmt.Println("Bar") }).
		OrElse(func() { fmt.Println("Foo") })
	// Output: Bar
}

func ExampleThenReturn() {
	fmt.Println(flow.ThenReturn(flow.When(false), 1000).OrElse(0))
	// Output: 0
}

func ExampleVoidConclusion_OrElseThrow() {
	err := flow.When(false).
		Then(cond.DoNothing()).
		OrElseThrow(func() error { return errors.New("runtime error") })
	fmt.Println(err)
	// Output: runtime error
}

func ExampleFlow_ThenThrow() {
	fmt.Println(flow.When(true).ThenThrow(func(msg string) error { return errors.New(msg) }, "expected"))
	fmt.Println(flow.When(false).ThenThrow(func(msg string) error { return errors.New(msg) }, "expected"))
	// Output:
	// expected
	// <nil>
}
