// Package schedule holds the stateless services of the scheduling core: the
// session scheduler with its double-booking guarantees, the advisory
// availability registry, and the read-side range queries. All state lives in
// the store; each operation is one transactional unit of work.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"training-schedule-backend/internal/interval"
	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/store"
)

// ScheduleRequest is the input to Scheduler.Schedule.
type ScheduleRequest struct {
	AssignmentID int64
	RoomID       int64
	Start        time.Time
	End          time.Time
}

// Scheduler turns a requested time block into a confirmed session while
// guaranteeing that neither the room nor the resolved trainer is
// double-booked.
type Scheduler struct {
	store store.Store
	newID func() string
	now   func() time.Time
}

// NewScheduler wires a scheduler over the given store.
func NewScheduler(s store.Store) *Scheduler {
	return &Scheduler{
		store: s,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Schedule validates the window, resolves the trainer through the
// assignment, and delegates the atomic check-then-insert to the store.
// On success it returns the session enriched with catalog display names.
func (s *Scheduler) Schedule(ctx context.Context, req ScheduleRequest) (model.SessionDetail, error) {
	span := interval.New(req.Start, req.End)
	if !span.Valid() {
		return model.SessionDetail{}, newError(KindValidation, "session end must be after start")
	}

	assignment, err := s.store.GetAssignment(ctx, req.AssignmentID)
	if errors.Is(err, store.ErrNotFound) {
		return model.SessionDetail{}, newError(KindNotFound, "assignment %d does not exist", req.AssignmentID)
	}
	if err != nil {
		return model.SessionDetail{}, err
	}

	session := model.Session{
		ID:           s.newID(),
		AssignmentID: assignment.ID,
		RoomID:       req.RoomID,
		StartAt:      req.Start,
		EndAt:        req.End,
		CreatedAt:    s.now(),
	}

	err = s.store.CreateSession(ctx, session, assignment.TrainerID)
	switch {
	case errors.Is(err, store.ErrRoomConflict):
		return model.SessionDetail{}, newError(KindRoomConflict,
			"room %d is already booked between %s and %s",
			req.RoomID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
	case errors.Is(err, store.ErrTrainerConflict):
		return model.SessionDetail{}, newError(KindTrainerConflict,
			"trainer %d is already booked between %s and %s",
			assignment.TrainerID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
	case err != nil:
		return model.SessionDetail{}, fmt.Errorf("schedule failed: %w", err)
	}

	return s.store.SessionDetail(ctx, session.ID)
}

// Delete removes a session by id. No cascade side effects.
func (s *Scheduler) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteSession(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return newError(KindNotFound, "session %s does not exist", id)
	}
	return err
}
