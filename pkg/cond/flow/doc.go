// Package flow builds conditional chains without a parameter.
//
//	flow.When(ready).
//		Then(start).
//		OrElse(wait)
//
//	n := flow.ThenReturn(flow.WhenFunc(isHigh), 1000).OrElse(0)
//
// Key operations:
// - When/WhenFunc: begin a chain from a boolean or a deferred condition
// - Then: bind an action, concluded by OrElse or the OrElseThrow family
// - ThenReturn/ThenGet: bind a value or supplier, concluded by OrElse/OrElseGet
// - ThenThrow: evaluate now and return the built error when the condition holds
//
// Nothing is evaluated before the terminal call. Every conclusion is single-use.
package flow
