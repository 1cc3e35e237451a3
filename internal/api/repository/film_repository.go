package repository

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"gorm.io/gorm"
)

type FilmRepository interface {
	Create(film *models.Film) error
	GetByID(id string) (*models.Film, error)
	GetAll(offset, limit int) ([]models.Film, int64, error)
	UpdateMetadata(film *models.Film) error
	// UpdateAggregate writes the (rating, rating_count) pair guarded by the
	// film's version column. ErrConcurrency means a concurrent writer got
	// there first and the whole unit of work should be retried.
	UpdateAggregate(filmID string, expectedVersion int64, rating *float64, ratingCount int) error
	Delete(id string) error
	ReplaceGenres(filmID string, genreIDs []int64) error
	AddImage(image *models.FilmImage) error
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) Create(film *models.Film) error {
	if err := r.db.Create(film).Error; err != nil {
		return fmt.Errorf("create film: %w", err)
	}
	return nil
}

func (r *filmRepository) GetByID(id string) (*models.Film, error) {
	var film models.Film
	if err := r.db.Preload("Genres").Preload("Images").First(&film, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

func (r *filmRepository) GetAll(offset, limit int) ([]models.Film, int64, error) {
	var list []models.Film
	var total int64

	if err := r.db.Model(&models.Film{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.
		Preload("Genres").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// UpdateMetadata writes the descriptive columns only. The aggregate pair and
// its version never go through here.
func (r *filmRepository) UpdateMetadata(film *models.Film) error {
	err := r.db.Model(&models.Film{}).
		Where("id = ?", film.ID).
		Select("title", "synopsis", "release_date", "air_status", "episode_count").
		Updates(map[string]interface{}{
			"title":         film.Title,
			"synopsis":      film.Synopsis,
			"release_date":  film.ReleaseDate,
			"air_status":    film.AirStatus,
			"episode_count": film.EpisodeCount,
		}).Error
	if err != nil {
		return fmt.Errorf("update film: %w", err)
	}
	return nil
}

func (r *filmRepository) UpdateAggregate(filmID string, expectedVersion int64, rating *float64, ratingCount int) error {
	result := r.db.Model(&models.Film{}).
		Where("id = ? AND version = ?", filmID, expectedVersion).
		Updates(map[string]interface{}{
			"rating":       rating,
			"rating_count": ratingCount,
			"version":      expectedVersion + 1,
		})
	if result.Error != nil {
		return fmt.Errorf("update film aggregate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrConcurrency
	}
	return nil
}

func (r *filmRepository) Delete(id string) error {
	result := r.db.Delete(&models.Film{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete film: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *filmRepository) ReplaceGenres(filmID string, genreIDs []int64) error {
	if err := r.db.Where("film_id = ?", filmID).Delete(&models.FilmGenre{}).Error; err != nil {
		return fmt.Errorf("replace genres: %w", err)
	}
	for _, genreID := range genreIDs {
		link := models.FilmGenre{FilmID: filmID, GenreID: genreID}
		if err := r.db.Create(&link).Error; err != nil {
			return fmt.Errorf("replace genres: %w", err)
		}
	}
	return nil
}

func (r *filmRepository) AddImage(image *models.FilmImage) error {
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("add film image: %w", err)
	}
	return nil
}
