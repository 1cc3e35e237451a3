package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FilmImage is a stable reference to an uploaded asset. The bytes live in
// the blob store; we only keep the reference id and extension.
type FilmImage struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	FilmID    string    `gorm:"type:uuid;not null;index" json:"film_id"`
	Extension string    `gorm:"not null" json:"extension"`
	IsCover   bool      `gorm:"not null;default:false" json:"is_cover"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (img *FilmImage) BeforeCreate(tx *gorm.DB) (err error) {
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	return
}

func (FilmImage) TableName() string {
	return "film_images"
}
