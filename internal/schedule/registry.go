package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"training-schedule-backend/internal/interval"
	"training-schedule-backend/internal/model"
	"training-schedule-backend/internal/store"
)

// CreateWindowRequest is the input to Registry.CreateWindow.
type CreateWindowRequest struct {
	SubjectKind model.SubjectKind
	SubjectID   int64
	Start       time.Time
	End         time.Time
	IsAvailable bool
}

// Registry records open and blocked time windows for trainers and rooms.
// Windows are informational: they carry no reservation semantics and may
// overlap each other freely.
type Registry struct {
	store store.Store
	newID func() string
	now   func() time.Time
}

// NewRegistry wires a registry over the given store.
func NewRegistry(s store.Store) *Registry {
	return &Registry{
		store: s,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// CreateWindow validates and persists a new availability window.
func (r *Registry) CreateWindow(ctx context.Context, req CreateWindowRequest) (model.Availability, error) {
	if !interval.New(req.Start, req.End).Valid() {
		return model.Availability{}, newError(KindValidation, "availability end must be after start")
	}

	window := model.Availability{
		ID:          r.newID(),
		StartAt:     req.Start,
		EndAt:       req.End,
		IsAvailable: req.IsAvailable,
		CreatedAt:   r.now(),
	}

	switch req.SubjectKind {
	case model.SubjectTrainer:
		id := req.SubjectID
		window.TrainerID = &id
	case model.SubjectRoom:
		id := req.SubjectID
		window.RoomID = &id
	default:
		return model.Availability{}, newError(KindValidation,
			"subject kind must be %q or %q", model.SubjectTrainer, model.SubjectRoom)
	}

	if kind, _ := window.Subject(); kind == "" {
		return model.Availability{}, newError(KindValidation, "availability must reference exactly one trainer or room")
	}

	if err := r.store.CreateAvailability(ctx, window); err != nil {
		return model.Availability{}, err
	}
	return window, nil
}

// ListByTrainer returns a trainer's windows ordered ascending by start.
func (r *Registry) ListByTrainer(ctx context.Context, trainerID int64) ([]model.Availability, error) {
	return r.store.AvailabilityByTrainer(ctx, trainerID)
}

// ListByRoom returns a room's windows ordered ascending by start.
func (r *Registry) ListByRoom(ctx context.Context, roomID int64) ([]model.Availability, error) {
	return r.store.AvailabilityByRoom(ctx, roomID)
}

// Delete removes a window by id.
func (r *Registry) Delete(ctx context.Context, id string) error {
	err := r.store.DeleteAvailability(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return newError(KindNotFound, "availability window %s does not exist", id)
	}
	return err
}
