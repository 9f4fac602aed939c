package sched

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrUnknownDirection = errors.New("unknown sweep direction")
	ErrInvalidDiskSize  = errors.New("invalid disk size")
	ErrInvalidHead      = errors.New("invalid head position")
	ErrInvalidRequest   = errors.New("invalid track request")
	ErrEmptyQueue       = errors.New("request queue is empty")
)

// ValidationError reports a single rejected field of a Request
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error - %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
