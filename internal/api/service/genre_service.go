package service

import (
	"context"
	"errors"
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/dto"
	"filmhub/internal/api/models"
	"filmhub/internal/api/repository"

	"gorm.io/gorm"
)

type GenreService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateGenreRequest) (*dto.GenreResponse, error)
	Rename(ctx context.Context, actor Actor, genreID int64, req dto.RenameGenreRequest) (*dto.GenreResponse, error)
	GetByID(ctx context.Context, genreID int64) (*dto.GenreResponse, error)
	List(ctx context.Context) ([]dto.GenreResponse, error)
}

type genreService struct {
	uow    repository.UnitOfWork
	policy *AccessPolicy
}

func NewGenreService(uow repository.UnitOfWork, policy *AccessPolicy) GenreService {
	return &genreService{uow: uow, policy: policy}
}

func (s *genreService) Create(ctx context.Context, actor Actor, req dto.CreateGenreRequest) (*dto.GenreResponse, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var created models.Genre
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		genre := models.Genre{Name: req.Name}
		if err := tx.Genres().Create(&genre); err != nil {
			return err
		}
		created = genre
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.GenreResponse{ID: created.ID, Name: created.Name}, nil
}

// Rename changes a genre's unique name; a taken name is a conflict, not a
// duplicate-create.
func (s *genreService) Rename(ctx context.Context, actor Actor, genreID int64, req dto.RenameGenreRequest) (*dto.GenreResponse, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}

	var renamed models.Genre
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		if _, err := tx.Genres().GetByID(genreID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: genre", apperrors.ErrNotFound)
			}
			return err
		}
		if other, err := tx.Genres().GetByName(req.Name); err == nil && other.ID != genreID {
			return fmt.Errorf("%w: genre name %q is taken", apperrors.ErrConflict, req.Name)
		}
		if err := tx.Genres().Rename(genreID, req.Name); err != nil {
			return err
		}
		renamed = models.Genre{ID: genreID, Name: req.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.GenreResponse{ID: renamed.ID, Name: renamed.Name}, nil
}

func (s *genreService) GetByID(ctx context.Context, genreID int64) (*dto.GenreResponse, error) {
	var resp *dto.GenreResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		genre, err := tx.Genres().GetByID(genreID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: genre", apperrors.ErrNotFound)
			}
			return err
		}
		resp = &dto.GenreResponse{ID: genre.ID, Name: genre.Name}
		return nil
	})
	return resp, err
}

func (s *genreService) List(ctx context.Context) ([]dto.GenreResponse, error) {
	var resp []dto.GenreResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		genres, err := tx.Genres().GetAll()
		if err != nil {
			return err
		}
		resp = make([]dto.GenreResponse, 0, len(genres))
		for _, genre := range genres {
			resp = append(resp, dto.GenreResponse{ID: genre.ID, Name: genre.Name})
		}
		return nil
	})
	return resp, err
}
