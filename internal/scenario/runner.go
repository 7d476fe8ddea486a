package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
	"github.com/ib-77/fluentcond/pkg/cond/flow"
	"github.com/ib-77/fluentcond/pkg/cond/given"
)

// Report is the result of running one scenario
type Report struct {
	Name string
	// ID of the concluded chain; uuid.Nil for then_throw scenarios
	ID       uuid.UUID
	Taken    core.Side
	Value    string
	Err      error
	Output   string
	Passed   bool
	Mismatch string
}

// Runner drives scenarios through the chain packages
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// NewRunner creates a runner copying branch output to out
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{out: out, logger: logger}
}

// RunAll runs scenarios in order. With failFast it stops after the first failure.
func (r *Runner) RunAll(scenarios []Scenario, failFast bool) []Report {
	reports := make([]Report, 0, len(scenarios))
	for _, s := range scenarios {
		report := r.Run(s)
		reports = append(reports, report)
		if failFast && !report.Passed {
			break
		}
	}
	return reports
}

// Run concludes the chain described by s once and checks the expectations
func (r *Runner) Run(s Scenario) Report {
	var buf bytes.Buffer
	report := Report{Name: s.Name}

	if err := s.Validate(); err != nil {
		report.Err = err
		report.Mismatch = err.Error()
		r.logger.Error("scenario rejected", "scenario", s.Name, "error", err)
		return report
	}

	switch {
	case s.ThenThrow != "":
		report.Err = flow.When(s.When).ThenThrow(newError, s.ThenThrow)
		report.Taken = core.Fallback
		if s.When {
			report.Taken = core.Happy
		}
	case s.Given == nil && s.Then.returns():
		fill(&report, concludeValue(s), identity)
	case s.Given == nil:
		fill(&report, concludeVoid(s, &buf), unit)
	case s.Then.returns():
		fill(&report, concludeFunction(s), identity)
	default:
		fill(&report, concludeConsumer(s, &buf), unit)
	}

	report.Output = buf.String()
	report.Passed, report.Mismatch = check(s, report)

	if _, err := io.Copy(r.out, &buf); err != nil {
		r.logger.Warn("failed to copy scenario output", "scenario", s.Name, "error", err)
	}

	attrs := []any{"scenario", s.Name, "id", report.ID, "taken", report.Taken}
	if report.Passed {
		r.logger.Info("scenario passed", attrs...)
	} else {
		r.logger.Error("scenario failed", append(attrs, "mismatch", report.Mismatch)...)
	}
	return report
}

func fill[R any](rep *Report, out core.Outcome[R], value func(R) string) {
	rep.ID = out.ID()
	rep.Taken = out.Taken()
	rep.Err = out.Err()
	rep.Value = value(out.Result())
}

func identity(s string) string { return s }

func unit(cond.Unit) string { return "" }

func newError(msg string) error {
	return errors.New(msg)
}

func concludeValue(s Scenario) core.Outcome[string] {
	c := flow.ThenReturn(flow.When(s.When), *s.Then.Return)

	if s.OrElseThrow != "" {
		return c.Conclude(core.ThrowMsg[cond.Unit, string](newError, s.OrElseThrow))
	}
	return c.Conclude(core.Value[cond.Unit](*s.OrElse.Return))
}

func concludeVoid(s Scenario, w io.Writer) core.Outcome[cond.Unit] {
	c := flow.When(s.When).Then(printer(w, *s.Then.Print))

	if s.OrElseThrow != "" {
		return c.Conclude(core.ThrowMsg[cond.Unit, cond.Unit](newError, s.OrElseThrow))
	}
	return c.Conclude(core.Run[cond.Unit](printer(w, *s.OrElse.Print)))
}

func concludeFunction(s Scenario) core.Outcome[string] {
	pf := given.Given(*s.Given).When(s.When)

	var c *given.FunctionConclusion[string, string]
	if s.Then.Apply != "" {
		c = given.ThenApply(pf, functions[s.Then.Apply])
	} else {
		c = given.ThenReturn[string](pf, *s.Then.Return)
	}

	switch {
	case s.OrElseThrow != "":
		return c.Conclude(core.ThrowMsg[string, string](newError, s.OrElseThrow))
	case s.OrElse.Apply != "":
		return c.Conclude(core.Apply(functions[s.OrElse.Apply]))
	default:
		return c.Conclude(core.Value[string](*s.OrElse.Return))
	}
}

func concludeConsumer(s Scenario, w io.Writer) core.Outcome[cond.Unit] {
	c := given.Given(*s.Given).When(s.When).Then(consumer(w, *s.Then))

	switch {
	case s.OrElseThrow != "":
		return c.Conclude(core.ThrowMsg[string, cond.Unit](newError, s.OrElseThrow))
	case s.OrElse.Print != nil:
		return c.Conclude(core.Run[string](printer(w, *s.OrElse.Print)))
	default:
		return c.Conclude(core.Consume(consumer(w, *s.OrElse)))
	}
}

func printer(w io.Writer, text string) func() {
	return func() { fmt.Fprintln(w, text) }
}

// consumer turns a print or do step into a consumer of the parameter
func consumer(w io.Writer, step Step) func(string) {
	if step.Print != nil {
		p := printer(w, *step.Print)
		return func(string) { p() }
	}
	return consumers[step.Do](w)
}

func check(s Scenario, rep Report) (bool, string) {
	if s.ExpectError != "" {
		if rep.Err == nil {
			return false, fmt.Sprintf("expected error %q, got none", s.ExpectError)
		}
		if rep.Err.Error() != s.ExpectError {
			return false, fmt.Sprintf("expected error %q, got %q", s.ExpectError, rep.Err.Error())
		}
	} else if rep.Err != nil {
		return false, fmt.Sprintf("unexpected error %q", rep.Err.Error())
	}

	if s.Expect != nil && rep.Value != *s.Expect {
		return false, fmt.Sprintf("expected value %q, got %q", *s.Expect, rep.Value)
	}
	if s.ExpectOutput != nil && rep.Output != *s.ExpectOutput {
		return false, fmt.Sprintf("expected output %q, got %q", *s.ExpectOutput, rep.Output)
	}
	return true, ""
}
