// Package errs classifies application failures so the transport layer can map
// them to a status code in one place.
package errs

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// maxDepth bounds the frames recorded per error.
const maxDepth = 32

// Sentinels returned by the repository layer.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate key")
)

// Kind is the classification of a failure.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unclassified"
	}
}

// Error is a failure carrying a Kind and a client-facing message, plus the
// call stack at the point it was built.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	pcs     []uintptr
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a classified error.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, pcs: callers()}
}

// Wrap builds a classified error around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err, pcs: callers()}
}

// callers skips runtime.Callers, itself and New or Wrap.
func callers() []uintptr {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

func Validation(msg string) *Error   { return New(KindValidation, msg) }
func NotFound(msg string) *Error     { return New(KindNotFound, msg) }
func Conflict(msg string) *Error     { return New(KindConflict, msg) }
func Unauthorized(msg string) *Error { return New(KindUnauthorized, msg) }
func Forbidden(msg string) *Error    { return New(KindForbidden, msg) }

// KindOf reports the classification of err. Unclassified errors and nil
// report KindUnclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnclassified
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// StackOf formats the stack recorded by the outermost classified error in
// err's chain, one "function\n\tfile:line" pair per frame. Errors built
// outside this package have no stack and yield "".
func StackOf(err error) string {
	var e *Error
	if !errors.As(err, &e) || len(e.pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(e.pcs)
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return b.String()
}
