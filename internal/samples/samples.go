// Package samples walks through every chain shape and prints what each one
// does. It backs the samples command and the example program.
package samples

import (
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/fluentcond/internal/text"
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/flow"
	"github.com/ib-77/fluentcond/pkg/cond/given"
)

// ErrRuntime stands in for a caller-defined error type
var ErrRuntime = errors.New("runtime error")

type demo struct {
	w io.Writer
}

func (d demo) somethingIsTrue() bool { return true }
func (d demo) highNumber() int       { return 1000 }
func (d demo) lowNumber() int        { return 1 }
func (d demo) aString() string       { return "a string" }
func (d demo) printFoo()             { fmt.Fprintln(d.w, "Foo") }
func (d demo) printBar()             { fmt.Fprintln(d.w, "Bar") }
func (d demo) println(s string)      { fmt.Fprintln(d.w, s) }
func (d demo) printFirstChar(s string) {
	fmt.Fprintln(d.w, s[:1])
}
func (d demo) printLastChar(s string) {
	fmt.Fprintln(d.w, s[len(s)-1:])
}

func (d demo) section(name string) {
	fmt.Fprintf(d.w, "== %s\n", name)
}

func (d demo) raised(err error) {
	fmt.Fprintf(d.w, "raised: %v\n", err)
}

func newRuntimeError(msg string) error {
	return fmt.Errorf("%w: %s", ErrRuntime, msg)
}

func hashCode(s string) int {
	return int(text.HashCode(s))
}

// Run prints the walkthrough to w
func Run(w io.Writer) {
	d := demo{w: w}

	d.section("if-else")
	flow.WhenFunc(d.somethingIsTrue).
		Then(d.printBar).
		OrElse(d.printFoo)
	flow.When(!d.somethingIsTrue()).
		Then(d.printBar).
		OrElse(cond.DoNothing())

	d.section("then-return")
	fmt.Fprintln(w, flow.ThenReturn(flow.When(d.somethingIsTrue()), "Yay").OrElse("Nah"))
	fmt.Fprintln(w, flow.ThenGet(flow.WhenFunc(d.somethingIsTrue), d.highNumber).OrElseGet(d.lowNumber))
	fmt.Fprintln(w, flow.ThenGet(flow.When(false), d.highNumber).OrElse(0))

	d.section("execute-else-throw")
	if err := flow.WhenFunc(d.somethingIsTrue).Then(d.printBar).OrElseThrow(func() error { return ErrRuntime }); err != nil {
		d.raised(err)
	}
	if err := flow.When(false).Then(cond.DoNothing()).OrElseThrow(func() error { return ErrRuntime }); err != nil {
		d.raised(err)
	}
	if err := flow.When(false).Then(d.printFoo).OrElseThrowE(ErrRuntime); err != nil {
		d.raised(err)
	}

	d.section("return-else-throw")
	if n, err := flow.ThenGet(flow.WhenFunc(d.somethingIsTrue), d.highNumber).OrElseThrowE(ErrRuntime); err == nil {
		fmt.Fprintln(w, n)
	}
	if _, err := flow.ThenGet(flow.When(false), d.highNumber).OrElseThrowMsg(newRuntimeError, "no number"); err != nil {
		d.raised(err)
	}

	d.section("parametrized")
	given.Given("This").
		When(true).
		Then(d.printFirstChar).
		OrElse(d.printLastChar)
	given.GivenFunc(d.aString).
		WhenFunc(d.somethingIsTrue).
		Then(d.printFirstChar).
		OrElse(d.printLastChar)
	given.GivenFunc(d.aString).
		When(!d.somethingIsTrue()).
		Then(d.printFirstChar).
		OrElse(cond.DoNothingWith[string]())
	if err := given.GivenFunc(d.aString).
		When(!d.somethingIsTrue()).
		Then(d.printFirstChar).
		OrElseThrow(func() error { return ErrRuntime }); err != nil {
		d.raised(err)
	}
	given.Given("This").
		When(true).
		Then(d.println).
		OrElseDo(cond.DoNothing())

	d.section("parametrized-then-return")
	fmt.Fprintln(w, given.ThenApply(given.Given("Greetings").WhenFunc(d.somethingIsTrue), text.Length).OrElseApply(hashCode))
	fmt.Fprintln(w, given.ThenApply(given.Given("Greetings").When(false), text.Length).OrElseApply(hashCode))
	fmt.Fprintln(w, given.ThenApply(given.Given("Greetings").When(false), hashCode).OrElseGet(d.highNumber))
	fmt.Fprintln(w, given.ThenApply(given.Given("Greetings").When(false), hashCode).OrElse(2))
	fmt.Fprintln(w, given.ThenGet(given.Given("Greetings").When(false), d.highNumber).OrElseApply(text.Length))
	if _, err := given.ThenApply(given.Given("Greetings").When(false), hashCode).
		OrElseThrowMsg(newRuntimeError, "Exception message"); err != nil {
		d.raised(err)
	}

	d.section("then-throw")
	if err := flow.WhenFunc(d.somethingIsTrue).ThenThrow(newRuntimeError, "This was expected"); err != nil {
		d.raised(err)
	}
	if err := flow.When(false).ThenThrow(newRuntimeError, "never raised"); err != nil {
		d.raised(err)
	}
}
