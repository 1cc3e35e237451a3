package models

import "time"

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// ValidReactionType reports whether s is "like" or "dislike".
func ValidReactionType(s string) bool {
	return s == ReactionLike || s == ReactionDislike
}

// Reaction is at most one row per (user, review); a type switch mutates
// ReactionType in place rather than inserting a second row.
type Reaction struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reaction_user_review"`
	ReviewID     string    `json:"review_id" gorm:"type:uuid;not null;uniqueIndex:idx_reaction_user_review"`
	ReactionType string    `json:"reaction_type" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Review *Review `json:"review,omitempty" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;"`
}

func (Reaction) TableName() string {
	return "reactions"
}
