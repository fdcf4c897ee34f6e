package backend

import (
	"fmt"

	"github.com/longkey1/chatc/internal/chatc"
)

// ErrorKind classifies a communication failure
type ErrorKind string

const (
	KindNetwork ErrorKind = "network" // Request could not be sent or the body could not be read
	KindStatus  ErrorKind = "status"  // Backend answered with a non-2xx status
	KindDecode  ErrorKind = "decode"  // Body was not the expected JSON
)

// Error is returned for every failed backend call.
// It matches chatc.ErrCommunication with errors.Is.
type Error struct {
	Kind       ErrorKind
	StatusCode int // Set for KindStatus
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Kind == KindStatus && e.Err != nil:
		return fmt.Sprintf("backend: %s %d: %v", e.Kind, e.StatusCode, e.Err)
	case e.Kind == KindStatus:
		return fmt.Sprintf("backend: %s %d", e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("backend: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("backend: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is chatc.ErrCommunication
func (e *Error) Is(target error) bool {
	return target == chatc.ErrCommunication
}

func newError(kind ErrorKind, statusCode int, err error) *Error {
	return &Error{Kind: kind, StatusCode: statusCode, Err: err}
}
