package schedule

import (
	"context"
	"time"

	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/store"
)

// Query answers read-side range queries over confirmed sessions. A session
// matches when its start instant falls within [from, to], inclusive on both
// ends; a session already running at the range start is excluded. That
// start-instant asymmetry is the documented behavior and is kept on purpose.
type Query struct {
	store store.Store
}

// NewQuery wires the query service over the given store.
func NewQuery(s store.Store) *Query {
	return &Query{store: s}
}

// ByClass returns a class's sessions in the range, chronologically ordered.
func (q *Query) ByClass(ctx context.Context, classID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return q.store.SessionsByClass(ctx, classID, from, to)
}

// ByTrainer returns a trainer's sessions in the range, chronologically ordered.
func (q *Query) ByTrainer(ctx context.Context, trainerID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return q.store.SessionsByTrainer(ctx, trainerID, from, to)
}

// ByRoom returns a room's sessions in the range, chronologically ordered.
func (q *Query) ByRoom(ctx context.Context, roomID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return q.store.SessionsByRoom(ctx, roomID, from, to)
}
