package model

import "time"

// Session is a confirmed scheduled meeting of an Assignment in a specific
// room and time window. Sessions are never updated in place; a reschedule is
// a delete followed by a create through the scheduler.
type Session struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	AssignmentID int64     `gorm:"index;not null" json:"assignmentId"`
	RoomID       int64     `gorm:"index;not null" json:"roomId"`
	StartAt      time.Time `gorm:"index;not null" json:"start"`
	EndAt        time.Time `gorm:"not null" json:"end"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`

	// Associations
	Assignment Assignment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Room       Room       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SessionDetail is a Session enriched with catalog display names resolved at
// query time. Kept flat so it can be scanned straight out of the join.
type SessionDetail struct {
	ID           string    `json:"id"`
	AssignmentID int64     `json:"assignmentId"`
	ClassID      int64     `json:"classId"`
	ClassName    string    `json:"className"`
	ModuleID     int64     `json:"moduleId"`
	ModuleName   string    `json:"moduleName"`
	TrainerID    int64     `json:"trainerId"`
	TrainerName  string    `json:"trainerName"`
	RoomID       int64     `json:"roomId"`
	RoomName     string    `json:"roomName"`
	StartAt      time.Time `json:"start"`
	EndAt        time.Time `json:"end"`
}
