package dto

// CreateGenreRequest for admin genre creation
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// RenameGenreRequest for admin genre rename
type RenameGenreRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// GenreResponse for returning genre information
type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
