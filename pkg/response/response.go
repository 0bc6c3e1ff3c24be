package response

import (
	"errors"
)

type Error struct {
	Code    int
	Err     error
	Details string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

// WithDetails returns a copy of e carrying cause's message as details. The
// copy still matches e under errors.Is.
func (e *Error) WithDetails(cause error) error {
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	return &Error{Code: e.Code, Err: e.Err, Details: details}
}

func NewError(code int, err string) error {
	return &Error{Code: code, Err: errors.New(err)}
}

// WithDetails attaches cause to err when err is a *Error. Other errors are
// returned unchanged.
func WithDetails(err error, cause error) error {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.WithDetails(cause)
	}
	return err
}
