package entities

import (
	"errors"
	"fmt"
)

// Kind classifies engine failures so callers can branch without string matching
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindDependencyUnavailable
)

// String method for Kind enum
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindDependencyUnavailable:
		return "DependencyUnavailable"
	default:
		return "Unknown"
	}
}

// Error is a classified engine error
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the bare kind sentinels (ErrNotFound etc.) against any error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrNotFound              = &Error{Kind: KindNotFound}
	ErrInvalidInput          = &Error{Kind: KindInvalidInput}
	ErrDependencyUnavailable = &Error{Kind: KindDependencyUnavailable}
)

// NotFoundf builds a NotFound error
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidInputf builds an InvalidInput error
func InvalidInputf(format string, args ...any) error {
	return &Error{Kind: KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// Unavailable wraps the failure of a required dependency such as the entropy source
func Unavailable(msg string, err error) error {
	return &Error{Kind: KindDependencyUnavailable, Msg: msg, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
