package errors

import (
	"errors"
	"fmt"
)

type QueryError struct {
	Message string `json:"message"`
	// Builder is the kind of the builder that produced the error, if any.
	Builder string `json:"builder,omitempty"`
}

func (err *QueryError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("graphql: %s", err.Message)
	if err.Builder != "" {
		str += fmt.Sprintf(" (builder: %s)", err.Builder)
	}
	return str
}

var _ error = (*QueryError)(nil)

func New(format string, arg ...interface{}) *QueryError {
	return &QueryError{
		Message: fmt.Sprintf(format, arg...),
	}
}

// EmptySelectionSetError is returned when a builder is finalized before any
// field was selected on it.
type EmptySelectionSetError struct {
	Builder string `json:"builder"`
}

func (err *EmptySelectionSetError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprintf("graphql: empty selection set for %s", err.Builder)
}

var _ error = (*EmptySelectionSetError)(nil)

func IsEmptySelectionSet(err error) bool {
	var target *EmptySelectionSetError
	return errors.As(err, &target)
}
