// Package cond holds the shared building blocks of fluent conditionals:
// the lazy Condition and Parameter types, no-op factories, the sentinel
// errors and the conclusion interfaces implemented by the chain stages.
//
// Chains themselves are built with package flow (no parameter) and package
// given (parameterized). Package core contains the single evaluator behind
// every conclusion shape.
package cond
