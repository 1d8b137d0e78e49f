package model

import "time"

// Assignment binds one module to one class with one responsible trainer and
// an ordering sequence. The scheduling core resolves the trainer through this
// record but never mutates it.
type Assignment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ClassID   int64     `gorm:"index;not null" json:"classId"`
	ModuleID  int64     `gorm:"index;not null" json:"moduleId"`
	TrainerID int64     `gorm:"index;not null" json:"trainerId"`
	Sequence  int       `gorm:"not null" json:"sequence"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
	UpdatedAt time.Time `gorm:"not null" json:"-"`

	// Associations
	Class   Class   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Module  Module  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Trainer Trainer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
