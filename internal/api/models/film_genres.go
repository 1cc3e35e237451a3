package models

// explicit join model so cascades and indexes are under our control
type FilmGenre struct {
	ID      int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FilmID  string `json:"film_id" gorm:"type:uuid;index;not null"`
	GenreID int64  `json:"genre_id" gorm:"index;not null"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}
