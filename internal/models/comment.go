// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents a comment posted on a note. Comments are immutable once
// posted; only deletion by the commenter is exposed.
type Comment struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Content     string         `gorm:"type:text;not null" json:"content"`
	NoteID      uint           `gorm:"not null;index" json:"note_id"`
	CommenterID uint           `gorm:"not null;index" json:"commenter_id"`
	Commenter   User           `gorm:"foreignKey:CommenterID" json:"commenter"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
