// Package models contains data structures for the application's domain models.
package models

import "time"

// Tag labels notes for organization. Tag names are unique per owner, so two
// users may each have a tag named "work".
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:idx_owner_tag_name" json:"name"`
	OwnerID   uint      `gorm:"not null;uniqueIndex:idx_owner_tag_name" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
