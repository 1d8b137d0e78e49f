package schedule

import (
	"errors"
	"fmt"
)

// Kind is the machine-checkable class of a scheduling error.
type Kind string

const (
	KindValidation      Kind = "ValidationError"
	KindNotFound        Kind = "NotFoundError"
	KindRoomConflict    Kind = "RoomConflict"
	KindTrainerConflict Kind = "TrainerConflict"
)

// Error carries a taxonomy kind alongside a human-readable message. All four
// kinds are raised synchronously inside the operation that detects them and
// are never retried internally.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the taxonomy kind from an error chain. The second return
// is false for errors outside the taxonomy (storage faults and the like).
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
