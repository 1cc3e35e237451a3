package models

import "time"

const (
	WatchStatusPlanToWatch = "plan_to_watch"
	WatchStatusWatching    = "watching"
	WatchStatusCompleted   = "completed"
	WatchStatusOnHold      = "on_hold"
	WatchStatusDropped     = "dropped"
)

// ValidWatchStatus reports whether s is one of the five watch statuses.
func ValidWatchStatus(s string) bool {
	switch s {
	case WatchStatusPlanToWatch, WatchStatusWatching, WatchStatusCompleted,
		WatchStatusOnHold, WatchStatusDropped:
		return true
	}
	return false
}

// UserFilm is one entry of a user's watch list. Identity is the
// (user, film) pair; at most one entry per pair.
type UserFilm struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	FilmID    string    `gorm:"type:uuid;primaryKey" json:"film_id"`
	Status    string    `gorm:"not null" json:"status"`
	Progress  int       `gorm:"not null;default:0" json:"progress"`
	Version   int64     `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Film *Film `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;" json:"film,omitempty"`
}

func (UserFilm) TableName() string {
	return "user_films"
}
