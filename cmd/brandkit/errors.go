package main

import "errors"

// ErrUsage marks invalid arguments and flags.
var ErrUsage = errors.New("invalid usage")

// reportedError marks an error whose message was already written to stdout
// in the command's output format. run prints nothing more for it.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }
