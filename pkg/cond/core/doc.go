// Package core contains the one evaluator shared by every conclusion shape.
// A Conclusion[T, R] closes over a condition, a parameter of type T and the
// happy path; a terminal call supplies the fallback Branch, reads the
// condition once and runs exactly one side. Chains without a parameter use
// cond.Unit for T, chains without a result use cond.Unit for R.
//
// Branch adapters turn functions, suppliers, values, actions and error
// factories into the canonical Branch shape. Supply is the single combinator
// that ignores the parameter; the adapters built on it never force it.
package core
