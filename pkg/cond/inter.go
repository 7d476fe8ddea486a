package cond

import "github.com/google/uuid"

// Identified is implemented by every conclusion
type Identified interface {
	// ID returns the identifier of the chain instance
	ID() uuid.UUID
}

// Throwing defines the error fallbacks of chains that produce no value
type Throwing interface {
	Identified
	// OrElseThrow runs the happy path, or returns the error built by factory.
	// The factory is called on the false branch only.
	OrElseThrow(factory func() error) error
	// OrElseThrowMsg is OrElseThrow with a message-taking factory
	OrElseThrowMsg(factory func(msg string) error, msg string) error
	// OrElseThrowE returns err on the false branch. err was built before the
	// call, whatever the condition turns out to be, and a nil err panics at
	// the call before the condition is read.
	OrElseThrowE(err error) error
}

// ReturningOrThrowing defines the error fallbacks of chains that produce an R
type ReturningOrThrowing[R any] interface {
	Identified
	// OrElseThrow returns the happy path result, or the error built by factory
	OrElseThrow(factory func() error) (R, error)
	// OrElseThrowMsg is OrElseThrow with a message-taking factory
	OrElseThrowMsg(factory func(msg string) error, msg string) (R, error)
	// OrElseThrowE returns err on the false branch; err is built eagerly by the caller.
	// A nil err panics at the call whatever the condition.
	OrElseThrowE(err error) (R, error)
}
