package dto

import (
	"time"

	"filmhub/internal/api/models"
)

// CreateReviewRequest for writing a review
type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=10"`
	Comment *string `json:"comment,omitempty"`
}

// UpdateReviewRequest for editing an own review
type UpdateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=10"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID           string    `json:"id"`
	FilmID       string    `json:"film_id"`
	Username     string    `json:"username,omitempty"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FromModelToReviewResponse converts a Review model to a ReviewResponse DTO
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:           review.ID,
		FilmID:       review.FilmID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		LikeCount:    review.LikeCount,
		DislikeCount: review.DislikeCount,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
	if review.User != nil {
		resp.Username = review.User.Username
	}
	return resp
}

// PaginatedReviewResponse for returning paginated reviews
type PaginatedReviewResponse struct {
	Data   []ReviewResponse `json:"data"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
	Total  int64            `json:"total"`
}

func NewPaginatedReviewResponse(data []ReviewResponse, p Pagination, total int64) *PaginatedReviewResponse {
	return &PaginatedReviewResponse{
		Data:   data,
		Offset: p.Offset,
		Limit:  p.Limit,
		Total:  total,
	}
}
