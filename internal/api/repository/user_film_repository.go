package repository

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"gorm.io/gorm"
)

type UserFilmRepository interface {
	Create(userFilm *models.UserFilm) error
	Get(userID, filmID string) (*models.UserFilm, error)
	ListByUser(userID string, offset, limit int) ([]models.UserFilm, int64, error)
	// UpdateState writes status and progress guarded by the row's version
	// column.
	UpdateState(userID, filmID string, expectedVersion int64, status string, progress int) error
	Delete(userID, filmID string) error
}

type userFilmRepository struct {
	db *gorm.DB
}

func NewUserFilmRepository(db *gorm.DB) UserFilmRepository {
	return &userFilmRepository{db: db}
}

func (r *userFilmRepository) Create(userFilm *models.UserFilm) error {
	if err := r.db.Create(userFilm).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("add to watch list: %w", err)
	}
	return nil
}

func (r *userFilmRepository) Get(userID, filmID string) (*models.UserFilm, error) {
	var userFilm models.UserFilm
	if err := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).First(&userFilm).Error; err != nil {
		return nil, err
	}
	return &userFilm, nil
}

func (r *userFilmRepository) ListByUser(userID string, offset, limit int) ([]models.UserFilm, int64, error) {
	var list []models.UserFilm
	var total int64

	if err := r.db.Model(&models.UserFilm{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("user_id = ?", userID).
		Preload("Film").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *userFilmRepository) UpdateState(userID, filmID string, expectedVersion int64, status string, progress int) error {
	result := r.db.Model(&models.UserFilm{}).
		Where("user_id = ? AND film_id = ? AND version = ?", userID, filmID, expectedVersion).
		Updates(map[string]interface{}{
			"status":   status,
			"progress": progress,
			"version":  expectedVersion + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("update watch state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrency
	}
	return nil
}

func (r *userFilmRepository) Delete(userID, filmID string) error {
	result := r.db.Where("user_id = ? AND film_id = ?", userID, filmID).Delete(&models.UserFilm{})
	if result.Error != nil {
		return fmt.Errorf("remove from watch list: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
