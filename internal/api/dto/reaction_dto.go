package dto

// ReactRequest for placing a reaction on a review
type ReactRequest struct {
	ReactionType string `json:"reaction_type" binding:"required,oneof=like dislike"`
}

// ReactionResponse returns the review's counters after the reaction applied
type ReactionResponse struct {
	ReviewID     string `json:"review_id"`
	ReactionType string `json:"reaction_type,omitempty"`
	LikeCount    int    `json:"like_count"`
	DislikeCount int    `json:"dislike_count"`
}
