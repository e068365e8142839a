package broker

import (
	"errors"
	"fmt"
)

// Kind represents a failure kind surfaced to the caller.
type Kind string

const (
	KindStartFailed   Kind = "start_failed"
	KindNoUIContext   Kind = "no_ui_context"
	KindDeclined      Kind = "declined"
	KindTimeout       Kind = "timeout"
	KindPlatformError Kind = "platform_error"
	KindBusy          Kind = "busy"
)

// Sentinel errors, matched with errors.Is against any *Error of the same kind.
var (
	ErrStartFailed   = &Error{Kind: KindStartFailed, Message: "platform failed to start listening"}
	ErrNoUIContext   = &Error{Kind: KindNoUIContext, Message: "no UI context attached"}
	ErrDeclined      = &Error{Kind: KindDeclined, Message: "user declined"}
	ErrTimeout       = &Error{Kind: KindTimeout, Message: "listen operation timed out"}
	ErrPlatformError = &Error{Kind: KindPlatformError, Message: "unexpected platform event"}
	ErrBusy          = &Error{Kind: KindBusy, Message: "a request is already outstanding"}
)

// Error represents a structured broker failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the failure kind of err, or an empty kind when err is not a broker error.
func KindOf(err error) Kind {
	var brokerErr *Error
	if errors.As(err, &brokerErr) {
		return brokerErr.Kind
	}
	return ""
}
