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
	"filmhub/internal/pkg/password"

	"gorm.io/gorm"
)

var ErrWrongPassword = errors.New("old password is incorrect")

type UserService interface {
	GetProfile(ctx context.Context, actor Actor, username string, p dto.Pagination) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, actor Actor, req dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, actor Actor, req dto.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, actor Actor) error
}

type userService struct {
	uow       repository.UnitOfWork
	filmCache *cache.FilmCache
}

func NewUserService(uow repository.UnitOfWork, filmCache *cache.FilmCache) UserService {
	return &userService{uow: uow, filmCache: filmCache}
}

// GetProfile returns a user's public profile. A private profile viewed by
// anyone else omits the watch list.
func (s *userService) GetProfile(ctx context.Context, actor Actor, username string, p dto.Pagination) (*dto.UserProfileResponse, error) {
	var resp *dto.UserProfileResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		user, err := tx.Users().FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}

		var films *dto.PaginatedUserFilmResponse
		if !user.IsPrivate || user.ID == actor.ID {
			list, total, err := tx.UserFilms().ListByUser(user.ID, p.Offset, p.Limit)
			if err != nil {
				return err
			}
			data := make([]dto.UserFilmResponse, 0, len(list))
			for i := range list {
				data = append(data, dto.FromModelToUserFilmResponse(&list[i]))
			}
			films = dto.NewPaginatedUserFilmResponse(data, p, total)
		}

		resp = dto.FromModelToUserProfile(user, films)
		return nil
	})
	return resp, err
}

func (s *userService) UpdateProfile(ctx context.Context, actor Actor, req dto.UpdateProfileRequest) error {
	return s.uow.Do(ctx, func(tx repository.Tx) error {
		user, err := tx.Users().FindByID(actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}
		if req.Bio != nil {
			user.Bio = req.Bio
		}
		if req.IsPrivate != nil {
			user.IsPrivate = *req.IsPrivate
		}
		return tx.Users().UpdateProfile(user)
	})
}

func (s *userService) ChangePassword(ctx context.Context, actor Actor, req dto.ChangePasswordRequest) error {
	return s.uow.Do(ctx, func(tx repository.Tx) error {
		user, err := tx.Users().FindByID(actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}
		if err := password.Verify(user.Password, req.OldPassword); err != nil {
			return ErrWrongPassword
		}
		newHash, err := password.Hash(req.NewPassword)
		if err != nil {
			return err
		}
		return tx.Users().UpdatePassword(user.ID, newHash)
	})
}

// DeleteAccount removes the user and everything they own. Counters and film
// aggregates the account contributed to are re-applied before the row-level
// cascade fires, all inside one unit of work.
func (s *userService) DeleteAccount(ctx context.Context, actor Actor) error {
	var touchedFilms []string
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		touchedFilms = touchedFilms[:0]

		if _, err := tx.Users().FindByID(actor.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}

		// undo this user's reactions on other reviews first
		reactions, err := tx.Reactions().AllByUser(actor.ID)
		if err != nil {
			return err
		}
		for _, reaction := range reactions {
			review, err := tx.Reviews().GetByID(reaction.ReviewID)
			if err != nil {
				return err
			}
			likes, dislikes := review.LikeCount, review.DislikeCount
			if reaction.ReactionType == models.ReactionLike {
				likes--
			} else {
				dislikes--
			}
			if err := tx.Reactions().Delete(reaction.ID); err != nil {
				return err
			}
			if err := tx.Reviews().UpdateCounters(review.ID, review.Version, likes, dislikes); err != nil {
				return err
			}
		}

		// then unwind each owned review from its film aggregate
		reviews, err := tx.Reviews().AllByUser(actor.ID)
		if err != nil {
			return err
		}
		for _, review := range reviews {
			film, err := tx.Films().GetByID(review.FilmID)
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
			touchedFilms = append(touchedFilms, film.ID)
		}

		// watch-list entries and the user row go through the FK cascade
		return tx.Users().Delete(actor.ID)
	})
	if err != nil {
		return err
	}

	for _, filmID := range touchedFilms {
		s.filmCache.Invalidate(ctx, filmID)
	}
	return nil
}
