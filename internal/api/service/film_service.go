package service

import (
	"context"
	"errors"
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/dto"
	"filmhub/internal/api/models"
	"filmhub/internal/api/repository"
	"filmhub/internal/cache"

	"gorm.io/gorm"
)

type FilmService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateFilmRequest) (*dto.FilmDetail, error)
	Update(ctx context.Context, actor Actor, filmID string, req dto.UpdateFilmRequest) (*dto.FilmDetail, error)
	Delete(ctx context.Context, actor Actor, filmID string) error
	GetByID(ctx context.Context, filmID string) (*dto.FilmDetail, error)
	List(ctx context.Context, p dto.Pagination) (*dto.PaginatedFilmResponse, error)
}

type filmService struct {
	uow       repository.UnitOfWork
	policy    *AccessPolicy
	filmCache *cache.FilmCache
}

func NewFilmService(uow repository.UnitOfWork, policy *AccessPolicy, filmCache *cache.FilmCache) FilmService {
	return &filmService{
		uow:       uow,
		policy:    policy,
		filmCache: filmCache,
	}
}

// Create adds a film to the catalog. Admin only. The rating aggregate is
// born undefined; only the review path may ever set it.
func (s *filmService) Create(ctx context.Context, actor Actor, req dto.CreateFilmRequest) (*dto.FilmDetail, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !models.ValidAirStatus(req.AirStatus) {
		return nil, fmt.Errorf("%w: unknown air status %q", apperrors.ErrInvalidRequest, req.AirStatus)
	}
	if req.EpisodeCount != nil && *req.EpisodeCount < 0 {
		return nil, fmt.Errorf("%w: episode count must not be negative", apperrors.ErrInvalidRequest)
	}

	var created *models.Film
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		genreIDs, err := resolveGenres(tx, req.Genres)
		if err != nil {
			return err
		}

		film := models.Film{
			Title:        req.Title,
			Synopsis:     req.Synopsis,
			ReleaseDate:  req.ReleaseDate,
			AirStatus:    req.AirStatus,
			EpisodeCount: req.EpisodeCount,
		}
		if err := tx.Films().Create(&film); err != nil {
			return err
		}
		if err := tx.Films().ReplaceGenres(film.ID, genreIDs); err != nil {
			return err
		}

		for _, ref := range req.Images {
			image := models.FilmImage{
				FilmID:    film.ID,
				Extension: ref.Extension,
				IsCover:   ref.IsCover,
			}
			if err := tx.Films().AddImage(&image); err != nil {
				return err
			}
		}

		full, err := tx.Films().GetByID(film.ID)
		if err != nil {
			return err
		}
		created = full
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.FromModelToFilmDetail(created), nil
}

// Update rewrites a film's descriptive metadata. Admin only. The aggregate
// columns are untouched by this path.
func (s *filmService) Update(ctx context.Context, actor Actor, filmID string, req dto.UpdateFilmRequest) (*dto.FilmDetail, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if !models.ValidAirStatus(req.AirStatus) {
		return nil, fmt.Errorf("%w: unknown air status %q", apperrors.ErrInvalidRequest, req.AirStatus)
	}
	if req.EpisodeCount != nil && *req.EpisodeCount < 0 {
		return nil, fmt.Errorf("%w: episode count must not be negative", apperrors.ErrInvalidRequest)
	}

	var updated *models.Film
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		film, err := tx.Films().GetByID(filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}

		genreIDs, err := resolveGenres(tx, req.Genres)
		if err != nil {
			return err
		}

		film.Title = req.Title
		film.Synopsis = req.Synopsis
		film.ReleaseDate = req.ReleaseDate
		film.AirStatus = req.AirStatus
		film.EpisodeCount = req.EpisodeCount
		if err := tx.Films().UpdateMetadata(film); err != nil {
			return err
		}
		if err := tx.Films().ReplaceGenres(film.ID, genreIDs); err != nil {
			return err
		}

		full, err := tx.Films().GetByID(film.ID)
		if err != nil {
			return err
		}
		updated = full
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return dto.FromModelToFilmDetail(updated), nil
}

// Delete removes a film; reviews, reactions, watch-list entries and images
// go with it through the foreign-key cascades.
func (s *filmService) Delete(ctx context.Context, actor Actor, filmID string) error {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return err
	}

	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		if err := tx.Films().Delete(filmID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return nil
}

func (s *filmService) GetByID(ctx context.Context, filmID string) (*dto.FilmDetail, error) {
	if detail, ok := s.filmCache.Get(ctx, filmID); ok {
		return detail, nil
	}

	var detail *dto.FilmDetail
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		film, err := tx.Films().GetByID(filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}
		detail = dto.FromModelToFilmDetail(film)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.filmCache.Set(ctx, detail)
	return detail, nil
}

func (s *filmService) List(ctx context.Context, p dto.Pagination) (*dto.PaginatedFilmResponse, error) {
	var resp *dto.PaginatedFilmResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		films, total, err := tx.Films().GetAll(p.Offset, p.Limit)
		if err != nil {
			return err
		}
		data := make([]dto.FilmSummary, 0, len(films))
		for i := range films {
			data = append(data, dto.FromModelToFilmSummary(&films[i]))
		}
		resp = dto.NewPaginatedFilmResponse(data, p, total)
		return nil
	})
	return resp, err
}

// resolveGenres maps genre names to ids; an unknown name aborts the unit of
// work.
func resolveGenres(tx repository.Tx, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		genre, err := tx.Genres().GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: genre %q", apperrors.ErrNotFound, name)
			}
			return nil, err
		}
		ids = append(ids, genre.ID)
	}
	return ids, nil
}
