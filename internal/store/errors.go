package store

import "errors"

// Sentinel errors surfaced by the store. The schedule package maps them onto
// the caller-facing taxonomy.
var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrRoomConflict indicates the requested window overlaps an existing
	// session in the same room.
	ErrRoomConflict = errors.New("room already booked for this window")
	// ErrTrainerConflict indicates the requested window overlaps an existing
	// session led by the same trainer.
	ErrTrainerConflict = errors.New("trainer already booked for this window")
)
