package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AirStatusNotYetAired    = "not_yet_aired"
	AirStatusAiring         = "airing"
	AirStatusFinishedAiring = "finished_airing"
)

// ValidAirStatus reports whether s is one of the three air statuses.
func ValidAirStatus(s string) bool {
	return s == AirStatusNotYetAired || s == AirStatusAiring || s == AirStatusFinishedAiring
}

// Film carries the stored rating aggregate. Rating is nil exactly when
// RatingCount is zero; both columns are written only through the aggregate
// update path, guarded by Version.
type Film struct {
	ID           string     `gorm:"primaryKey;type:uuid" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Synopsis     *string    `gorm:"type:text" json:"synopsis,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	AirStatus    string     `gorm:"not null;index" json:"air_status"`
	EpisodeCount *int       `json:"episode_count,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	RatingCount  int        `gorm:"not null;default:0" json:"rating_count"`
	Version      int64      `gorm:"not null;default:0" json:"-"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Genres []Genre     `json:"genres,omitempty" gorm:"many2many:film_genres;constraint:OnDelete:CASCADE;"`
	Images []FilmImage `json:"images,omitempty" gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;"`
}

func (film *Film) BeforeCreate(tx *gorm.DB) (err error) {
	if film.ID == "" {
		film.ID = uuid.New().String()
	}
	return
}

func (Film) TableName() string {
	return "films"
}
