// Package given builds conditional chains that thread a parameter into both
// branches.
//
//	given.Given("Greetings").
//		When(ok).
//		Then(greet).
//		OrElse(complain)
//
//	n := given.ThenApply(given.Given("Greetings").When(true), length).
//		OrElseApply(hash)
//
// The parameter is deferred like the condition. It is evaluated at most once,
// and only by a branch that consumes it: functions and consumers receive it,
// values, suppliers and actions do not force it.
//
// Key operations:
// - Given/GivenFunc: bind the parameter
// - When/WhenFunc: bind the condition
// - Then: bind a consumer of the parameter
// - ThenApply/ThenGet/ThenReturn: bind a function, supplier or value
// - OrElse*, OrElseThrow*: conclude the chain
package given
