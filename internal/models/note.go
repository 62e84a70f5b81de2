// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Note represents a study note created by a user. Private notes are visible
// to their owner only; public notes are readable by anyone.
type Note struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	IsPublic bool   `gorm:"default:false;index" json:"is_public"`
	OwnerID  uint   `gorm:"not null;index" json:"owner_id"`
	Owner    User   `gorm:"foreignKey:OwnerID" json:"owner"`
	Tags     []Tag  `gorm:"many2many:note_tags" json:"tags"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int `gorm:"->" json:"comments_count"`
	// Liked indicates whether the current requesting user liked this note (computed)
	Liked     bool           `gorm:"->" json:"liked"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
