package model

import "time"

// SubjectKind names the resource an availability window belongs to.
type SubjectKind string

const (
	SubjectTrainer SubjectKind = "trainer"
	SubjectRoom    SubjectKind = "room"
)

// Availability is a recorded open or blocked time window for exactly one
// trainer or one room. Exactly one of TrainerID / RoomID is populated.
// Windows are advisory: overlapping windows for the same subject are allowed,
// and a changed window is a delete plus a recreate, never an update.
type Availability struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TrainerID   *int64    `gorm:"index" json:"trainerId,omitempty"`
	RoomID      *int64    `gorm:"index" json:"roomId,omitempty"`
	StartAt     time.Time `gorm:"index;not null" json:"start"`
	EndAt       time.Time `gorm:"not null" json:"end"`
	IsAvailable bool      `gorm:"not null" json:"isAvailable"`
	CreatedAt   time.Time `gorm:"not null" json:"-"`
}

// Subject reports which resource axis the window is bound to, or an empty
// kind when the record violates the exactly-one invariant.
func (a Availability) Subject() (SubjectKind, int64) {
	switch {
	case a.TrainerID != nil && a.RoomID == nil:
		return SubjectTrainer, *a.TrainerID
	case a.RoomID != nil && a.TrainerID == nil:
		return SubjectRoom, *a.RoomID
	default:
		return "", 0
	}
}
