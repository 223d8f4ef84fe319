package core

import "errors"

// Error kinds. Match them with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrParse      = errors.New("parse error")
	ErrIO         = errors.New("io error")
)

// Error carries a user-facing message together with its kind and cause.
// It satisfies errors.Is(err, Kind) and unwraps to Err.
type Error struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	case e.Kind != nil:
		return e.Kind.Error()
	}
	return "unknown error"
}

func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns an ErrValidation error with the given message.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

// NotFound returns an ErrNotFound error with the given message.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

// Parse wraps err as an ErrParse error.
func Parse(op, msg string, err error) error {
	return &Error{Kind: ErrParse, Op: op, Msg: msg, Err: err}
}

// IO wraps err as an ErrIO error.
func IO(op, msg string, err error) error {
	return &Error{Kind: ErrIO, Op: op, Msg: msg, Err: err}
}
