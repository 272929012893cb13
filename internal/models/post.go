package models

import "time"

// Post is a published image with a caption. The ID is issued by idgen rather
// than the store's auto-increment, so an ID is never reused even after a hard
// delete. LikesCount and CommentsCount follow the same incremental counter
// discipline as the User follow counters.
type Post struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Caption       string         `gorm:"not null" json:"caption"`
	ImageURL      string         `gorm:"not null" json:"imageUrl"`
	UserID        uint           `gorm:"not null;index" json:"userId"`
	User          User           `gorm:"foreignKey:UserID" json:"user"`
	LikesCount    int            `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int            `gorm:"not null;default:0" json:"commentsCount"`
	// Liked and OwnPost are computed per viewer at query time.
	Liked     bool      `gorm:"-" json:"isLiked"`
	OwnPost   bool      `gorm:"-" json:"isOwnPost"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
