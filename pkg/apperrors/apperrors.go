// Package apperrors defines the error taxonomy shared by loaders, writers and pipelines.
package apperrors

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by a pipeline wraps exactly one of them.
var (
	ErrIO       = errors.New("io error")
	ErrSchema   = errors.New("schema error")
	ErrEncoding = errors.New("encoding error")
	ErrUsage    = errors.New("usage error")
)

// Stage names reported in StageError.
const (
	StageLoad      = "load"
	StageAggregate = "aggregate"
	StageScore     = "score"
	StageWrite     = "write"
)

// StageError records which pipeline stage aborted the run.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %s", e.Stage, e.Err.Error())
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Wrap attaches a stage name to err. A nil err stays nil.
func Wrap(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// Stage returns the stage name carried by err, or "" when err did not come
// from a pipeline stage.
func Stage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return 1
	case errors.Is(err, ErrIO):
		return 2
	case errors.Is(err, ErrSchema):
		return 3
	case errors.Is(err, ErrEncoding):
		return 4
	default:
		return 1
	}
}
