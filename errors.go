package gostreamsx

import "errors"

// ErrLimitReached is the error used to short-circuit a stream by canceling its context to indicate that
// the maximum number of elements given to CollectWithLimit has been reached.
var ErrLimitReached = errors.New("limit reached")

// ErrFused is the error used to release a source stream once FuseOnFail has seen it fail.
var ErrFused = errors.New("stream fused")

// A SourceStreamError reports that a source stream failed while a terminal operation
// was consuming it. It wraps the failure exactly as the source surfaced it.
type SourceStreamError struct {
	// Err is the source stream's failure.
	Err error
}

// Error implements error.
func (e *SourceStreamError) Error() string {
	return "source stream: " + e.Err.Error()
}

// Unwrap returns the source stream's failure.
func (e *SourceStreamError) Unwrap() error {
	return e.Err
}

// sourceErr wraps err in a SourceStreamError. A nil err stays nil.
func sourceErr(err error) error {
	if err == nil {
		return nil
	}

	return &SourceStreamError{Err: err}
}
