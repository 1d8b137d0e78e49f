// Package interval provides the closed-open time span shared by the
// availability registry and the session scheduler.
package interval

import "time"

// Span is a closed-open time interval [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

// New builds a span from two instants.
func New(start, end time.Time) Span {
	return Span{Start: start, End: end}
}

// Valid reports whether the span has positive length. Zero-length and
// inverted spans are rejected by callers before any overlap check.
func (s Span) Valid() bool {
	return s.Start.Before(s.End)
}

// Overlaps reports whether two spans share any instant. Because spans are
// closed-open, a span ending exactly when another starts does not overlap:
// a session ending at 10:00 and one starting at 10:00 can share a room.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}
