package sanitize

import "fmt"

// Kind is a typed error category from the §7 error handling table, so
// callers can branch with errors.Is instead of matching strings.
type Kind string

const (
	InputTooLarge    Kind = "InputTooLarge"
	InvalidFormat    Kind = "InvalidFormat"
	InvalidConfig    Kind = "InvalidConfig"
	MalformedMap     Kind = "MalformedMap"
	ModelUnavailable Kind = "ModelUnavailable"
	InternalPanic    Kind = "InternalPanic"
)

// Error wraps a Kind with a human-readable message. It supports errors.Is
// against a Sentinel(kind) target via Is, and errors.Unwrap for any
// wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, sanitize.Sentinel(sanitize.InputTooLarge)) work
// without a type assertion: any *Error target with the same Kind matches,
// whatever its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError constructs an *Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap constructs an *Error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Sentinel returns a zero-message *Error of the given kind, suitable as
// the target argument to errors.Is.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
