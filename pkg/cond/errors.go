package cond

import "errors"

// ErrAlreadyConcluded is reported when a terminal call is made on a conclusion
// that has already been concluded. Error-returning terminals return it,
// the others panic with it.
var ErrAlreadyConcluded = errors.New("cond: chain already concluded")
