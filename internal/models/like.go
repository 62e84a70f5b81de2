// Package models contains data structures for the application's domain models.
package models

import "time"

// Like represents a user's like on a note.
// The combination of NoteID and UserID must be unique.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NoteID    uint      `gorm:"not null;uniqueIndex:idx_note_user_like" json:"note_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_note_user_like" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
