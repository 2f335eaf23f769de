// api/errors/common_errors.go
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrInvalidQuery      = errors.New("invalid query parameters")
	ErrLockTimeout       = errors.New("timed out waiting for lock")
)

// ValidationError collects every problem found in a request. It matches its
// Kind sentinel with errors.Is.
type ValidationError struct {
	Kind     error
	Problems []string
}

func NewValidationError(kind error) *ValidationError {
	return &ValidationError{Kind: kind}
}

func (e *ValidationError) Add(format string, args ...interface{}) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) HasProblems() bool {
	return len(e.Problems) > 0
}

// ErrOrNil returns e when it holds problems and a true nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if !e.HasProblems() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	kind := "validation failed"
	if e.Kind != nil {
		kind = e.Kind.Error()
	}
	return kind + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// PersistenceError wraps a failed store operation. It matches ErrDatabaseOperation.
type PersistenceError struct {
	Op  string
	Err error
}

func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrDatabaseOperation
}
