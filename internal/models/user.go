// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered TaskHive account.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"unique;not null" json:"username"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	// FollowersCount and FollowingCount are not persisted; computed at query time
	FollowersCount int `gorm:"-" json:"followers_count,omitempty"`
	FollowingCount int `gorm:"-" json:"following_count,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Notes          []Note         `gorm:"foreignKey:OwnerID" json:"notes,omitempty"`
}

// FollowUser is a row in a followers/following listing. FollowedBack reports
// whether the requesting user follows the listed user.
type FollowUser struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	FollowedBack bool   `json:"followed_back"`
}

// Profile is the public view of a user, shaped for profile pages.
// IsFollowing is computed from the perspective of the requesting user.
type Profile struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	IsFollowing    bool      `json:"is_following"`
	CreatedAt      time.Time `json:"created_at"`
}
