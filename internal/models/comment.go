package models

import "time"

// Comment represents a comment left on a post. It participates in the same
// counter discipline as likes: adding or removing a comment adjusts the
// owning post's CommentsCount inside the same transaction.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"postId"`
	UserID    uint      `gorm:"not null" json:"userId"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
