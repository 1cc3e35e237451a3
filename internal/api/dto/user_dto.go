package dto

import (
	"time"

	"filmhub/internal/api/models"
)

// UpdateProfileRequest for editing the own profile
type UpdateProfileRequest struct {
	Bio       *string `json:"bio,omitempty"`
	IsPrivate *bool   `json:"is_private,omitempty"`
}

// ChangePasswordRequest for rotating the own password
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UserProfileResponse for profile views. Films is nil for a private profile
// viewed by a stranger.
type UserProfileResponse struct {
	Username  string                     `json:"username"`
	Bio       *string                    `json:"bio,omitempty"`
	IsPrivate bool                       `json:"is_private"`
	CreatedAt time.Time                  `json:"created_at"`
	Films     *PaginatedUserFilmResponse `json:"films,omitempty"`
}

// FromModelToUserProfile converts a User model to a profile DTO
func FromModelToUserProfile(user *models.User, films *PaginatedUserFilmResponse) *UserProfileResponse {
	return &UserProfileResponse{
		Username:  user.Username,
		Bio:       user.Bio,
		IsPrivate: user.IsPrivate,
		CreatedAt: user.CreatedAt,
		Films:     films,
	}
}
