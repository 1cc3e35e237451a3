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

type UserFilmService interface {
	Add(ctx context.Context, actor Actor, filmID string, req dto.AddUserFilmRequest) (*dto.UserFilmResponse, error)
	Update(ctx context.Context, actor Actor, filmID string, req dto.UpdateUserFilmRequest) (*dto.UserFilmResponse, error)
	Remove(ctx context.Context, actor Actor, filmID string) error
	ListByUser(ctx context.Context, actor Actor, username string, p dto.Pagination) (*dto.PaginatedUserFilmResponse, error)
}

type userFilmService struct {
	uow       repository.UnitOfWork
	policy    *AccessPolicy
	filmCache *cache.FilmCache
}

func NewUserFilmService(uow repository.UnitOfWork, policy *AccessPolicy, filmCache *cache.FilmCache) UserFilmService {
	return &userFilmService{
		uow:       uow,
		policy:    policy,
		filmCache: filmCache,
	}
}

// Add puts a film on the actor's watch list after the state machine approves
// the initial (status, progress) pair.
func (s *userFilmService) Add(ctx context.Context, actor Actor, filmID string, req dto.AddUserFilmRequest) (*dto.UserFilmResponse, error) {
	var entry models.UserFilm
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		film, err := tx.Films().GetByID(filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}

		if err := validateWatchState(film, req.Status, req.Progress); err != nil {
			return err
		}

		entry = models.UserFilm{
			UserID:   actor.ID,
			FilmID:   filmID,
			Status:   req.Status,
			Progress: req.Progress,
		}
		return tx.UserFilms().Create(&entry)
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToUserFilmResponse(&entry)
	return &resp, nil
}

// Update moves a watch-list entry to a new (status, progress) pair through
// the same state machine as Add.
func (s *userFilmService) Update(ctx context.Context, actor Actor, filmID string, req dto.UpdateUserFilmRequest) (*dto.UserFilmResponse, error) {
	var entry models.UserFilm
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		userFilm, err := tx.UserFilms().Get(actor.ID, filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: watch list entry", apperrors.ErrNotFound)
			}
			return err
		}

		film, err := tx.Films().GetByID(filmID)
		if err != nil {
			return err
		}
		if err := validateWatchState(film, req.Status, req.Progress); err != nil {
			return err
		}

		if err := tx.UserFilms().UpdateState(actor.ID, filmID, userFilm.Version, req.Status, req.Progress); err != nil {
			return err
		}

		userFilm.Status = req.Status
		userFilm.Progress = req.Progress
		entry = *userFilm
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToUserFilmResponse(&entry)
	return &resp, nil
}

// Remove takes a film off the actor's watch list. The entry's review, its
// reactions, and its contribution to the film aggregate go with it, all in
// one unit of work.
func (s *userFilmService) Remove(ctx context.Context, actor Actor, filmID string) error {
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		if _, err := tx.UserFilms().Get(actor.ID, filmID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: watch list entry", apperrors.ErrNotFound)
			}
			return err
		}

		review, err := tx.Reviews().GetByUserAndFilm(actor.ID, filmID)
		switch {
		case err == nil:
			film, err := tx.Films().GetByID(filmID)
			if err != nil {
				return err
			}
			if err := tx.Reactions().DeleteByReview(review.ID); err != nil {
				return err
			}
			if err := tx.Reviews().Delete(review.ID); err != nil {
				return err
			}
			agg := applyRatingRemoval(aggregateOf(film.Rating, film.RatingCount), review.Rating)
			if err := tx.Films().UpdateAggregate(film.ID, film.Version, agg.Rating, agg.Count); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// nothing reviewed, nothing to unwind
		default:
			return err
		}

		return tx.UserFilms().Delete(actor.ID, filmID)
	})
	if err != nil {
		return err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return nil
}

// ListByUser returns a user's watch list. Private profiles are readable only
// by their owner.
func (s *userFilmService) ListByUser(ctx context.Context, actor Actor, username string, p dto.Pagination) (*dto.PaginatedUserFilmResponse, error) {
	var resp *dto.PaginatedUserFilmResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		user, err := tx.Users().FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}

		if user.IsPrivate && user.ID != actor.ID {
			if err := s.policy.RequireOwner(actor, user.ID); err != nil {
				return err
			}
		}

		list, total, err := tx.UserFilms().ListByUser(user.ID, p.Offset, p.Limit)
		if err != nil {
			return err
		}

		data := make([]dto.UserFilmResponse, 0, len(list))
		for i := range list {
			data = append(data, dto.FromModelToUserFilmResponse(&list[i]))
		}
		resp = dto.NewPaginatedUserFilmResponse(data, p, total)
		return nil
	})
	return resp, err
}
