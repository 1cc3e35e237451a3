package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review references its author directly; one review per (user, film) pair.
// LikeCount/DislikeCount are maintained by the reaction path only, guarded
// by Version.
type Review struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_film" json:"user_id"`
	FilmID       string    `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_film" json:"film_id"`
	Rating       int       `gorm:"not null;check:rating >= 1 AND rating <= 10" json:"rating"`
	Comment      *string   `gorm:"type:text" json:"comment,omitempty"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	DislikeCount int       `gorm:"not null;default:0" json:"dislike_count"`
	Version      int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Film *Film `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;" json:"film,omitempty"`
}

func (review *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return
}

func (Review) TableName() string {
	return "reviews"
}
