package repository

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(genre *models.Genre) error
	GetByID(id int64) (*models.Genre, error)
	GetByName(name string) (*models.Genre, error)
	GetAll() ([]models.Genre, error)
	Rename(id int64, name string) error
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) Create(genre *models.Genre) error {
	if err := r.db.Create(genre).Error; err != nil {
		if apperrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *genreRepository) GetByID(id int64) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.First(&genre, id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) GetByName(name string) (*models.Genre, error) {
	var genre models.Genre
	if err := r.db.Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) GetAll() ([]models.Genre, error) {
	var genres []models.Genre
	if err := r.db.Order("name").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *genreRepository) Rename(id int64, name string) error {
	result := r.db.Model(&models.Genre{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		if apperrors.IsUniqueViolation(result.Error) {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("rename genre: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
