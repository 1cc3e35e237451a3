package dto

import (
	"math"
	"time"

	"filmhub/internal/api/models"
)

// ImageRef is a stable reference to an already-uploaded asset; the blob
// store owns the bytes.
type ImageRef struct {
	Extension string `json:"extension" binding:"required"`
	IsCover   bool   `json:"is_cover"`
}

// CreateFilmRequest for admin film creation. The rating aggregate is not
// part of the payload; a new film always starts unrated.
type CreateFilmRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Synopsis     *string    `json:"synopsis,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	AirStatus    string     `json:"air_status" binding:"required"`
	EpisodeCount *int       `json:"episode_count,omitempty"`
	Genres       []string   `json:"genres,omitempty"`
	Images       []ImageRef `json:"images,omitempty"`
}

// UpdateFilmRequest for admin metadata edits.
type UpdateFilmRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=255"`
	Synopsis     *string    `json:"synopsis,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	AirStatus    string     `json:"air_status" binding:"required"`
	EpisodeCount *int       `json:"episode_count,omitempty"`
	Genres       []string   `json:"genres,omitempty"`
}

// FilmSummary for list views
type FilmSummary struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	AirStatus    string     `json:"air_status"`
	EpisodeCount *int       `json:"episode_count,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	RatingCount  int        `json:"rating_count"`
}

// FilmDetail for single-film views
type FilmDetail struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Synopsis     *string    `json:"synopsis,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	AirStatus    string     `json:"air_status"`
	EpisodeCount *int       `json:"episode_count,omitempty"`
	Rating       *float64   `json:"rating,omitempty"`
	RatingCount  int        `json:"rating_count"`
	Genres       []string   `json:"genres"`
	CoverImage   *string    `json:"cover_image,omitempty"`
	Images       []string   `json:"images,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PaginatedFilmResponse struct {
	Data   []FilmSummary `json:"data"`
	Offset int           `json:"offset"`
	Limit  int           `json:"limit"`
	Total  int64         `json:"total"`
}

func roundRating(r *float64) *float64 {
	if r == nil {
		return nil
	}
	rounded := math.Round(*r*100) / 100
	return &rounded
}

// FromModelToFilmSummary converts a Film model to a FilmSummary DTO
func FromModelToFilmSummary(film *models.Film) FilmSummary {
	return FilmSummary{
		ID:           film.ID,
		Title:        film.Title,
		ReleaseDate:  film.ReleaseDate,
		AirStatus:    film.AirStatus,
		EpisodeCount: film.EpisodeCount,
		Rating:       roundRating(film.Rating),
		RatingCount:  film.RatingCount,
	}
}

// FromModelToFilmDetail converts a Film model to a FilmDetail DTO
func FromModelToFilmDetail(film *models.Film) *FilmDetail {
	genres := make([]string, 0, len(film.Genres))
	for _, genre := range film.Genres {
		genres = append(genres, genre.Name)
	}

	var cover *string
	images := make([]string, 0, len(film.Images))
	for _, img := range film.Images {
		ref := img.ID + img.Extension
		if img.IsCover && cover == nil {
			c := ref
			cover = &c
			continue
		}
		images = append(images, ref)
	}

	return &FilmDetail{
		ID:           film.ID,
		Title:        film.Title,
		Synopsis:     film.Synopsis,
		ReleaseDate:  film.ReleaseDate,
		AirStatus:    film.AirStatus,
		EpisodeCount: film.EpisodeCount,
		Rating:       roundRating(film.Rating),
		RatingCount:  film.RatingCount,
		Genres:       genres,
		CoverImage:   cover,
		Images:       images,
		CreatedAt:    film.CreatedAt,
	}
}

func NewPaginatedFilmResponse(data []FilmSummary, p Pagination, total int64) *PaginatedFilmResponse {
	return &PaginatedFilmResponse{
		Data:   data,
		Offset: p.Offset,
		Limit:  p.Limit,
		Total:  total,
	}
}
