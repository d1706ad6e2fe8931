package expr

import "fmt"

// Error reports a pricing expression invariant violation. It carries a
// message only; the SDK-wide error taxonomy wraps it when surfacing to
// callers outside this package.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}
