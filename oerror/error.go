package oerror

import "fmt"

// OomphError is an error raised by botsim itself rather than by one of its collaborators.
type OomphError struct {
	Err   string
	cause error
}

// New returns a new OomphError with a message formatted from the arguments passed. If one of the arguments is
// an error wrapped with the %w verb, it is kept as the cause of the returned error.
func New(format string, args ...any) *OomphError {
	err := fmt.Errorf(format, args...)
	return &OomphError{Err: err.Error(), cause: unwrapped(err)}
}

func unwrapped(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}

func (e *OomphError) Error() string {
	return e.Err
}

func (e *OomphError) Unwrap() error {
	return e.cause
}
