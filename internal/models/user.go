// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultBio is the greeting every freshly signed-up account starts with.
const DefaultBio = "Hey, what's up? Welcome to Lumeo!"

// User represents an account in the Lumeo application. FollowersCount and
// FollowingCount are denormalized aggregates of the follows relation and are
// maintained incrementally on every follow/unfollow, never recomputed per read.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"not null" json:"name"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Bio            string         `json:"bio"`
	ImageURL       string         `json:"imageUrl"`
	FollowersCount int            `gorm:"not null;default:0" json:"followersCount"`
	FollowingCount int            `gorm:"not null;default:0" json:"followingCount"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate fills in the default bio for accounts created without one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.Bio == "" {
		u.Bio = DefaultBio
	}
	return nil
}
