package dto

import (
	"time"

	"filmhub/internal/api/models"
)

// AddUserFilmRequest for adding a film to the watch list
type AddUserFilmRequest struct {
	Status   string `json:"status" binding:"required"`
	Progress int    `json:"progress"`
}

// UpdateUserFilmRequest for changing status/progress of a list entry
type UpdateUserFilmRequest struct {
	Status   string `json:"status" binding:"required"`
	Progress int    `json:"progress"`
}

// UserFilmResponse for returning a watch-list entry
type UserFilmResponse struct {
	FilmID    string    `json:"film_id"`
	Title     string    `json:"title,omitempty"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToUserFilmResponse converts a UserFilm model to a DTO
func FromModelToUserFilmResponse(userFilm *models.UserFilm) UserFilmResponse {
	resp := UserFilmResponse{
		FilmID:    userFilm.FilmID,
		Status:    userFilm.Status,
		Progress:  userFilm.Progress,
		UpdatedAt: userFilm.UpdatedAt,
	}
	if userFilm.Film != nil {
		resp.Title = userFilm.Film.Title
	}
	return resp
}

// PaginatedUserFilmResponse for returning a paginated watch list
type PaginatedUserFilmResponse struct {
	Data   []UserFilmResponse `json:"data"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
	Total  int64              `json:"total"`
}

func NewPaginatedUserFilmResponse(data []UserFilmResponse, p Pagination, total int64) *PaginatedUserFilmResponse {
	return &PaginatedUserFilmResponse{
		Data:   data,
		Offset: p.Offset,
		Limit:  p.Limit,
		Total:  total,
	}
}
