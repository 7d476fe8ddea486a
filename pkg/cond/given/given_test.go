package given

import (
	"errors"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/ib-77/fluentcond/pkg/cond"
	"github.com/ib-77/fluentcond/pkg/cond/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spy struct {
	calls int
}

func (s *spy) condition(v bool) cond.Condition {
	return func() bool {
		s.calls++
		return v
	}
}

func (s *spy) parameter(v string) cond.Lazy[string] {
	return func() string {
		s.calls++
		return v
	}
}

func hash(s string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum32())
}

func TestThenApply_OrElseApply_HappyPath(t *testing.T) {
	t.Parallel()
	param, condition := &spy{}, &spy{}
	hashed := 0

	got := ThenApply(GivenFunc(param.parameter("Greetings")).WhenFunc(condition.condition(true)),
		func(s string) int { return len(s) }).
		OrElseApply(func(s string) int {
			hashed++
			return hash(s)
		})

	assert.Equal(t, 9, got)
	assert.Zero(t, hashed)
	assert.Equal(t, 1, param.calls)
	assert.Equal(t, 1, condition.calls)
}

func TestThenApply_OrElseApply_Fallback(t *testing.T) {
	t.Parallel()
	param := &spy{}

	got := ThenApply(GivenFunc(param.parameter("Greetings")).When(false),
		func(s string) int { return len(s) }).
		OrElseApply(hash)

	assert.Equal(t, hash("Greetings"), got)
	assert.Equal(t, 1, param.calls)
}

func TestFallbackValue_DoesNotForceParameter(t *testing.T) {
	t.Parallel()
	param := &spy{}

	got := ThenApply(GivenFunc(param.parameter("Greetings")).When(false), hash).OrElse(2)
	assert.Equal(t, 2, got)
	assert.Zero(t, param.calls)

	got = ThenApply(GivenFunc(param.parameter("Greetings")).When(false), hash).OrElseGet(func() int { return 1 })
	assert.Equal(t, 1, got)
	assert.Zero(t, param.calls)
}

func TestHappySupplier_DoesNotForceParameter(t *testing.T) {
	t.Parallel()
	param := &spy{}

	got := ThenGet(GivenFunc(param.parameter("Greetings")).When(true), func() int { return 1000 }).
		OrElseApply(hash)
	assert.Equal(t, 1000, got)
	assert.Zero(t, param.calls)

	got = ThenReturn[string](GivenFunc(param.parameter("Greetings")).When(true), 7).OrElseApply(hash)
	assert.Equal(t, 7, got)
	assert.Zero(t, param.calls)
}

func TestThenGet_FallbackFunctionForcesParameter(t *testing.T) {
	t.Parallel()
	param := &spy{}

	got := ThenGet(GivenFunc(param.parameter("Greetings")).When(false), func() int { return 1000 }).
		OrElseApply(hash)
	assert.Equal(t, hash("Greetings"), got)
	assert.Equal(t, 1, param.calls)
}

func TestThen_ConsumerReceivesParameter(t *testing.T) {
	t.Parallel()
	var printed []string
	first := func(s string) { printed = append(printed, s[:1]) }
	last := func(s string) { printed = append(printed, s[len(s)-1:]) }

	Given("This").When(true).Then(first).OrElse(last)
	Given("a string").When(false).Then(first).OrElse(last)

	assert.Equal(t, []string{"T", "g"}, printed)
}

func TestThen_OrElseDo_DoesNotForceParameter(t *testing.T) {
	t.Parallel()
	param := &spy{}
	consumed := 0

	GivenFunc(param.parameter("a string")).
		When(false).
		Then(func(string) { consumed++ }).
		OrElseDo(cond.DoNothing())

	assert.Zero(t, consumed)
	assert.Zero(t, param.calls)
}

func TestThen_OrElse_DoNothingWith(t *testing.T) {
	t.Parallel()
	param := &spy{}
	consumed := 0

	GivenFunc(param.parameter("a string")).
		When(false).
		Then(func(string) { consumed++ }).
		OrElse(cond.DoNothingWith[string]())

	assert.Zero(t, consumed)
	assert.Equal(t, 1, param.calls)
}

func TestIncompleteChain_EvaluatesNothing(t *testing.T) {
	t.Parallel()
	param, condition := &spy{}, &spy{}

	_ = GivenFunc(param.parameter("a string")).
		WhenFunc(condition.condition(true)).
		Then(func(string) { t.Fatal("consumer must not run") })
	_ = ThenApply(GivenFunc(param.parameter("a string")).WhenFunc(condition.condition(true)), strings.ToUpper)

	assert.Zero(t, param.calls)
	assert.Zero(t, condition.calls)
}

func TestConsumer_OrElseThrow(t *testing.T) {
	t.Parallel()
	errNotTrue := errors.New("not true")
	built := 0
	factory := func() error {
		built++
		return errNotTrue
	}
	var printed []string
	printer := func(s string) { printed = append(printed, s) }

	assert.NoError(t, Given("This").When(true).Then(printer).OrElseThrow(factory))
	assert.Zero(t, built)
	assert.Equal(t, []string{"This"}, printed)

	assert.Same(t, errNotTrue, Given("That").When(false).Then(printer).OrElseThrow(factory))
	assert.Equal(t, 1, built)
	assert.Equal(t, []string{"This"}, printed)

	assert.EqualError(t, Given("That").When(false).Then(printer).OrElseThrowMsg(errors.New, "msg"), "msg")
	assert.ErrorIs(t, Given("That").When(false).Then(printer).OrElseThrowE(errNotTrue), errNotTrue)
}

func TestFunction_OrElseThrow(t *testing.T) {
	t.Parallel()
	param := &spy{}
	errNotTrue := errors.New("not true")

	got, err := ThenApply(Given("Greetings").When(true), hash).OrElseThrowMsg(errors.New, "Exception message")
	require.NoError(t, err)
	assert.Equal(t, hash("Greetings"), got)

	got, err = ThenApply(GivenFunc(param.parameter("Greetings")).When(false), hash).
		OrElseThrow(func() error { return errNotTrue })
	assert.Same(t, errNotTrue, err)
	assert.Zero(t, got)
	assert.Zero(t, param.calls, "throwing must not force the parameter")

	_, err = ThenApply(Given("Greetings").When(false), hash).OrElseThrowE(errNotTrue)
	assert.ErrorIs(t, err, errNotTrue)
}

type message struct {
	text string
}

func TestThenApply_ChangesType(t *testing.T) {
	t.Parallel()
	type someClass struct{ high, low string }
	extractHigh := func(s someClass) message { return message{text: s.high} }
	extractLow := func(s someClass) message { return message{text: s.low} }

	got := ThenApply(Given(someClass{high: "I'm so high", low: "I'm so low"}).When(false), extractHigh).
		OrElseApply(extractLow)

	assert.Equal(t, "I'm so low", got.text)
}

func TestConclusion_SingleUse(t *testing.T) {
	t.Parallel()
	condition := &spy{}

	f := ThenApply(Given("abc").WhenFunc(condition.condition(true)), strings.ToUpper)
	assert.Equal(t, "ABC", f.OrElse(""))
	_, err := f.OrElseThrow(func() error { return errors.New("unused") })
	assert.ErrorIs(t, err, cond.ErrAlreadyConcluded)
	assert.PanicsWithValue(t, cond.ErrAlreadyConcluded, func() { f.OrElseApply(strings.ToLower) })
	assert.Equal(t, 1, condition.calls)

	c := Given("abc").When(true).Then(cond.DoNothingWith[string]())
	c.OrElseDo(cond.DoNothing())
	assert.ErrorIs(t, c.OrElseThrowE(errors.New("unused")), cond.ErrAlreadyConcluded)
	assert.PanicsWithValue(t, cond.ErrAlreadyConcluded, func() { c.OrElse(cond.DoNothingWith[string]()) })
}

func TestConclude_Outcome(t *testing.T) {
	t.Parallel()
	f := ThenApply(Given("abc").When(true), strings.ToUpper)

	out := f.Conclude(core.Apply(strings.ToLower))
	assert.Equal(t, "ABC", out.Result())
	assert.True(t, out.IsHappy())
	assert.Equal(t, f.ID(), out.ID())

	c := Given("abc").When(false).Then(cond.DoNothingWith[string]())
	assert.Equal(t, core.Fallback, c.Conclude(core.Run[string](cond.DoNothing())).Taken())
}

func TestConclude_SecondCallPanics(t *testing.T) {
	t.Parallel()
	condition, param := &spy{}, &spy{}
	f := ThenApply(GivenFunc(param.parameter("abc")).WhenFunc(condition.condition(true)), strings.ToUpper)

	assert.Equal(t, "ABC", f.Conclude(core.Apply(strings.ToLower)).Result())
	assert.PanicsWithValue(t, cond.ErrAlreadyConcluded, func() {
		f.Conclude(core.Apply(strings.ToLower))
	})

	out, ok := f.TryConclude(core.Apply(strings.ToLower))
	assert.False(t, ok)
	assert.ErrorIs(t, out.Err(), cond.ErrAlreadyConcluded)
	assert.Empty(t, out.Result())
	assert.Equal(t, 1, condition.calls)
	assert.Equal(t, 1, param.calls)

	c := Given("abc").When(false).Then(cond.DoNothingWith[string]())
	first, ok := c.TryConclude(core.Run[string](cond.DoNothing()))
	require.True(t, ok)
	assert.True(t, first.IsFallback())
	assert.PanicsWithValue(t, cond.ErrAlreadyConcluded, func() {
		c.Conclude(core.Run[string](cond.DoNothing()))
	})
}

func TestOrElseThrowE_NilPanicsWhateverTheCondition(t *testing.T) {
	t.Parallel()
	for _, holds := range []bool{true, false} {
		condition, param := &spy{}, &spy{}
		assert.PanicsWithValue(t, "cond: nil error", func() {
			_ = GivenFunc(param.parameter("abc")).WhenFunc(condition.condition(holds)).
				Then(cond.DoNothingWith[string]()).
				OrElseThrowE(nil)
		})
		assert.PanicsWithValue(t, "cond: nil error", func() {
			_, _ = ThenApply(GivenFunc(param.parameter("abc")).WhenFunc(condition.condition(holds)), strings.ToUpper).
				OrElseThrowE(nil)
		})
		assert.Zero(t, condition.calls)
		assert.Zero(t, param.calls)
	}
}
