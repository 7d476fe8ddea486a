package core

import (
	"time"

	"github.com/google/uuid"
)

// Side names the branch a conclusion took
type Side int

const (
	NotTaken Side = iota
	Happy
	Fallback
)

func (s Side) String() string {
	switch s {
	case Happy:
		return "happy"
	case Fallback:
		return "fallback"
	default:
		return "not-taken"
	}
}

// Outcome records a single conclusion
type Outcome[R any] struct {
	id          uuid.UUID
	concludedAt time.Time
	result      R
	err         error
	taken       Side
}

// Result returns the value produced by the taken branch
func (o Outcome[R]) Result() R {
	return o.result
}

// Err returns the error produced by the taken branch, or cond.ErrAlreadyConcluded
func (o Outcome[R]) Err() error {
	return o.err
}

// Unpack returns the result and the error
func (o Outcome[R]) Unpack() (R, error) {
	return o.result, o.err
}

func (o Outcome[R]) Taken() Side {
	return o.taken
}

func (o Outcome[R]) IsHappy() bool {
	return o.taken == Happy
}

func (o Outcome[R]) IsFallback() bool {
	return o.taken == Fallback
}

// ConcludedAt time of the conclusion (UTC). Zero when nothing was evaluated.
func (o Outcome[R]) ConcludedAt() time.Time {
	return o.concludedAt
}

// ID of the chain instance that produced the outcome
func (o Outcome[R]) ID() uuid.UUID {
	return o.id
}
