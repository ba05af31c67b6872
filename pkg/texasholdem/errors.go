package texasholdem

import (
	"errors"
	"fmt"
)

// Error is a user-facing game error. Handlers should treat these as caller
// mistakes rather than internal failures.
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

func newError(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// ErrInsufficientStack is an error when a participant cannot cover a bet.
// It is kept distinct from plain validation errors since it reflects
// game-state capacity rather than a malformed request.
var ErrInsufficientStack = errors.New("insufficient stack")
