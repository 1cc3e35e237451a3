package repository

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"gorm.io/gorm"
)

type ReactionRepository interface {
	Create(reaction *models.Reaction) error
	GetByUserAndReview(userID, reviewID string) (*models.Reaction, error)
	// UpdateType flips an existing reaction between like and dislike in
	// place; a switch never inserts a second row.
	UpdateType(reactionID int64, reactionType string) error
	Delete(reactionID int64) error
	DeleteByReview(reviewID string) error
	AllByUser(userID string) ([]models.Reaction, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(reaction *models.Reaction) error {
	if err := r.db.Create(reaction).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("create reaction: %w", err)
	}
	return nil
}

func (r *reactionRepository) GetByUserAndReview(userID, reviewID string) (*models.Reaction, error) {
	var reaction models.Reaction
	if err := r.db.Where("user_id = ? AND review_id = ?", userID, reviewID).First(&reaction).Error; err != nil {
		return nil, err
	}
	return &reaction, nil
}

func (r *reactionRepository) UpdateType(reactionID int64, reactionType string) error {
	err := r.db.Model(&models.Reaction{}).
		Where("id = ?", reactionID).
		Update("reaction_type", reactionType).Error
	if err != nil {
		return fmt.Errorf("update reaction type: %w", err)
	}
	return nil
}

func (r *reactionRepository) Delete(reactionID int64) error {
	result := r.db.Delete(&models.Reaction{}, reactionID)
	if result.Error != nil {
		return fmt.Errorf("delete reaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *reactionRepository) DeleteByReview(reviewID string) error {
	if err := r.db.Where("review_id = ?", reviewID).Delete(&models.Reaction{}).Error; err != nil {
		return fmt.Errorf("delete reactions for review: %w", err)
	}
	return nil
}

func (r *reactionRepository) AllByUser(userID string) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := r.db.Where("user_id = ?", userID).Find(&reactions).Error; err != nil {
		return nil, fmt.Errorf("list reactions by user: %w", err)
	}
	return reactions, nil
}
