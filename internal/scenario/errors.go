package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDefinition = errors.New("invalid vector definition")
	ErrUnknownVector     = errors.New("unknown vector")
	ErrUnknownOp         = errors.New("unknown operation")
	ErrArity             = errors.New("wrong number of arguments")
	ErrMissingParam      = errors.New("missing parameter")
	ErrEmptyScenario     = errors.New("scenario has no steps")
	ErrScalarResult      = errors.New("scalar result cannot be stored")
)

// StepError ties a failure to the step that produced it.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
