package repository

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	GetByUserAndFilm(userID, filmID string) (*models.Review, error)
	ListByFilm(filmID string, offset, limit int) ([]models.Review, int64, error)
	ListByUser(userID string, offset, limit int) ([]models.Review, int64, error)
	// AllByUser returns every review a user owns, unpaginated; used by the
	// account-deletion unit of work to re-apply aggregate removals.
	AllByUser(userID string) ([]models.Review, error)
	UpdateContent(reviewID string, rating int, comment *string) error
	// UpdateCounters writes the like/dislike pair guarded by the review's
	// version column, so two concurrent reactions cannot both apply against
	// the same snapshot.
	UpdateCounters(reviewID string, expectedVersion int64, likeCount, dislikeCount int) error
	Delete(reviewID string) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	if err := r.db.Create(review).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.Preload("User").First(&review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetByUserAndFilm(userID, filmID string) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByFilm(filmID string, offset, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("film_id = ?", filmID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("film_id = ?", filmID).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) ListByUser(userID string, offset, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	if err := r.db.Model(&models.Review{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("user_id = ?", userID).
		Preload("Film").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *reviewRepository) AllByUser(userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) UpdateContent(reviewID string, rating int, comment *string) error {
	err := r.db.Model(&models.Review{}).
		Where("id = ?", reviewID).
		Select("rating", "comment").
		Updates(map[string]interface{}{
			"rating":  rating,
			"comment": comment,
		}).Error
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) UpdateCounters(reviewID string, expectedVersion int64, likeCount, dislikeCount int) error {
	result := r.db.Model(&models.Review{}).
		Where("id = ? AND version = ?", reviewID, expectedVersion).
		Updates(map[string]interface{}{
			"like_count":    likeCount,
			"dislike_count": dislikeCount,
			"version":       expectedVersion + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("update review counters: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrency
	}
	return nil
}

func (r *reviewRepository) Delete(reviewID string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", reviewID)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
