package interpreter

import "fmt"

// ErrorKind is the flat failure taxonomy. Every failure is fatal to the
// operation that raised it and everything above it, up to the top-level
// per-node loop; sibling top-level nodes still run.
type ErrorKind string

const (
	ErrUnknownOperation  ErrorKind = "UnknownOperation"
	ErrArity             ErrorKind = "ArityError"
	ErrUndefinedVariable ErrorKind = "UndefinedVariable"
	ErrIndexOutOfBounds  ErrorKind = "IndexOutOfBounds"
	ErrEmptyCollection   ErrorKind = "EmptyCollection"
	ErrKeyNotFound       ErrorKind = "KeyNotFound"
	ErrTypeMismatch      ErrorKind = "TypeMismatch"
	ErrInvalidArgument   ErrorKind = "InvalidArgument"
)

// EvalError carries the failure kind plus the operation tag it surfaced in.
type EvalError struct {
	Kind    ErrorKind
	Op      string
	Message string
}

func (e *EvalError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s in <%s>: %s", e.Kind, e.Op, e.Message)
}

func failf(kind ErrorKind, op, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the failure kind, or "" for foreign errors.
func KindOf(err error) ErrorKind {
	if ev, ok := err.(*EvalError); ok {
		return ev.Kind
	}
	return ""
}
