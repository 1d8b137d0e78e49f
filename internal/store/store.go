package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"training-schedule-backend/internal/interval"
	"training-schedule-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Catalog lookups (read-only; the back-office owns these records).
	GetAssignment(ctx context.Context, id int64) (model.Assignment, error)

	// Sessions.
	CreateSession(ctx context.Context, session model.Session, trainerID int64) error
	DeleteSession(ctx context.Context, id string) error
	SessionDetail(ctx context.Context, id string) (model.SessionDetail, error)
	SessionsByClass(ctx context.Context, classID int64, from, to time.Time) ([]model.SessionDetail, error)
	SessionsByTrainer(ctx context.Context, trainerID int64, from, to time.Time) ([]model.SessionDetail, error)
	SessionsByRoom(ctx context.Context, roomID int64, from, to time.Time) ([]model.SessionDetail, error)

	// Availability windows.
	CreateAvailability(ctx context.Context, window model.Availability) error
	AvailabilityByTrainer(ctx context.Context, trainerID int64) ([]model.Availability, error)
	AvailabilityByRoom(ctx context.Context, roomID int64) ([]model.Availability, error)
	DeleteAvailability(ctx context.Context, id string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for read-only catalog handlers.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// GetAssignment loads a class-module-trainer binding by id.
func (s *gormStore) GetAssignment(ctx context.Context, id int64) (model.Assignment, error) {
	var assignment model.Assignment
	err := s.db.WithContext(ctx).First(&assignment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Assignment{}, ErrNotFound
	}
	if err != nil {
		return model.Assignment{}, fmt.Errorf("failed to load assignment %d: %w", id, err)
	}
	return assignment, nil
}

// CreateSession runs the check-then-insert critical section. The conflict
// reads and the insert execute inside one serializable transaction so that
// two concurrent calls for overlapping windows cannot both observe a clear
// calendar and both insert.
func (s *gormStore) CreateSession(ctx context.Context, session model.Session, trainerID int64) error {
	candidate := interval.New(session.StartAt, session.EndAt)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Room axis: every existing session in the requested room.
		var roomSessions []model.Session
		if err := tx.Where("room_id = ?", session.RoomID).Find(&roomSessions).Error; err != nil {
			return fmt.Errorf("failed to load sessions for room %d: %w", session.RoomID, err)
		}
		for _, other := range roomSessions {
			if candidate.Overlaps(interval.New(other.StartAt, other.EndAt)) {
				return ErrRoomConflict
			}
		}

		// Trainer axis: sessions whose assignment resolves to the same trainer.
		var trainerSessions []model.Session
		if err := tx.
			Joins("JOIN assignments ON assignments.id = sessions.assignment_id").
			Where("assignments.trainer_id = ?", trainerID).
			Find(&trainerSessions).Error; err != nil {
			return fmt.Errorf("failed to load sessions for trainer %d: %w", trainerID, err)
		}
		for _, other := range trainerSessions {
			if candidate.Overlaps(interval.New(other.StartAt, other.EndAt)) {
				return ErrTrainerConflict
			}
		}

		if err := tx.Create(&session).Error; err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

// DeleteSession removes a session by id.
func (s *gormStore) DeleteSession(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Session{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// sessionDetailQuery builds the join that resolves catalog display names for
// session rows. Shared by the single-record lookup and the range queries.
func (s *gormStore) sessionDetailQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&model.Session{}).
		Select(`sessions.id AS id,
			sessions.assignment_id AS assignment_id,
			assignments.class_id AS class_id,
			classes.name AS class_name,
			assignments.module_id AS module_id,
			modules.name AS module_name,
			assignments.trainer_id AS trainer_id,
			trainers.name AS trainer_name,
			sessions.room_id AS room_id,
			rooms.name AS room_name,
			sessions.start_at AS start_at,
			sessions.end_at AS end_at`).
		Joins("JOIN assignments ON assignments.id = sessions.assignment_id").
		Joins("JOIN classes ON classes.id = assignments.class_id").
		Joins("JOIN modules ON modules.id = assignments.module_id").
		Joins("JOIN trainers ON trainers.id = assignments.trainer_id").
		Joins("JOIN rooms ON rooms.id = sessions.room_id")
}

// SessionDetail loads one session with its resolved display names.
func (s *gormStore) SessionDetail(ctx context.Context, id string) (model.SessionDetail, error) {
	var details []model.SessionDetail
	err := s.sessionDetailQuery(ctx).Where("sessions.id = ?", id).Scan(&details).Error
	if err != nil {
		return model.SessionDetail{}, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	if len(details) == 0 {
		return model.SessionDetail{}, ErrNotFound
	}
	return details[0], nil
}

// Range queries match on the session start instant only, inclusive on both
// bounds, and return rows in chronological order.

func (s *gormStore) SessionsByClass(ctx context.Context, classID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return s.findSessions(ctx, "assignments.class_id = ?", classID, from, to)
}

func (s *gormStore) SessionsByTrainer(ctx context.Context, trainerID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return s.findSessions(ctx, "assignments.trainer_id = ?", trainerID, from, to)
}

func (s *gormStore) SessionsByRoom(ctx context.Context, roomID int64, from, to time.Time) ([]model.SessionDetail, error) {
	return s.findSessions(ctx, "sessions.room_id = ?", roomID, from, to)
}

func (s *gormStore) findSessions(ctx context.Context, cond string, id int64, from, to time.Time) ([]model.SessionDetail, error) {
	details := make([]model.SessionDetail, 0)
	err := s.sessionDetailQuery(ctx).
		Where(cond, id).
		Where("sessions.start_at >= ? AND sessions.start_at <= ?", from, to).
		Order("sessions.start_at ASC").
		Scan(&details).Error
	if err != nil {
		return nil, fmt.Errorf("session range query failed: %w", err)
	}
	return details, nil
}

// CreateAvailability persists a new window. No overlap check: the registry
// is advisory and overlapping windows for the same subject are permitted.
func (s *gormStore) CreateAvailability(ctx context.Context, window model.Availability) error {
	if err := s.db.WithContext(ctx).Create(&window).Error; err != nil {
		return fmt.Errorf("failed to insert availability window: %w", err)
	}
	return nil
}

// AvailabilityByTrainer lists a trainer's windows ascending by start.
func (s *gormStore) AvailabilityByTrainer(ctx context.Context, trainerID int64) ([]model.Availability, error) {
	return s.findAvailability(ctx, "trainer_id = ?", trainerID)
}

// AvailabilityByRoom lists a room's windows ascending by start.
func (s *gormStore) AvailabilityByRoom(ctx context.Context, roomID int64) ([]model.Availability, error) {
	return s.findAvailability(ctx, "room_id = ?", roomID)
}

func (s *gormStore) findAvailability(ctx context.Context, cond string, id int64) ([]model.Availability, error) {
	windows := make([]model.Availability, 0)
	err := s.db.WithContext(ctx).
		Where(cond, id).
		Order("start_at ASC").
		Find(&windows).Error
	if err != nil {
		return nil, fmt.Errorf("availability query failed: %w", err)
	}
	return windows, nil
}

// DeleteAvailability removes a window by id.
func (s *gormStore) DeleteAvailability(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Availability{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete availability window %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
