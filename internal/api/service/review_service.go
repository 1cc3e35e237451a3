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

type ReviewService interface {
	Create(ctx context.Context, actor Actor, filmID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, actor Actor, reviewID string, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, actor Actor, reviewID string) error
	GetByID(ctx context.Context, reviewID string) (*dto.ReviewResponse, error)
	ListByFilm(ctx context.Context, filmID string, p dto.Pagination) (*dto.PaginatedReviewResponse, error)
	ListByUser(ctx context.Context, username string, p dto.Pagination) (*dto.PaginatedReviewResponse, error)
}

type reviewService struct {
	uow       repository.UnitOfWork
	policy    *AccessPolicy
	filmCache *cache.FilmCache
}

func NewReviewService(uow repository.UnitOfWork, policy *AccessPolicy, filmCache *cache.FilmCache) ReviewService {
	return &reviewService{
		uow:       uow,
		policy:    policy,
		filmCache: filmCache,
	}
}

// Create writes a review and folds its rating into the film aggregate in one
// unit of work. The author must have the film on their watch list with a
// status past plan_to_watch.
func (s *reviewService) Create(ctx context.Context, actor Actor, filmID string, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 10 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 10", apperrors.ErrInvalidRequest)
	}

	var created models.Review
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		film, err := tx.Films().GetByID(filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}

		userFilm, err := tx.UserFilms().Get(actor.ID, filmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film is not on your watch list", apperrors.ErrInvalidState)
			}
			return err
		}
		if userFilm.Status == models.WatchStatusPlanToWatch {
			return fmt.Errorf("%w: cannot review a film you have not watched", apperrors.ErrInvalidState)
		}

		if _, err := tx.Reviews().GetByUserAndFilm(actor.ID, filmID); err == nil {
			return fmt.Errorf("%w: review", apperrors.ErrAlreadyExists)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		review := models.Review{
			UserID:  actor.ID,
			FilmID:  filmID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		if err := tx.Reviews().Create(&review); err != nil {
			return err
		}

		agg := applyNewRating(aggregateOf(film.Rating, film.RatingCount), req.Rating)
		if err := tx.Films().UpdateAggregate(film.ID, film.Version, agg.Rating, agg.Count); err != nil {
			return err
		}

		created = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return dto.FromModelToReviewResponse(&created), nil
}

// Update edits an own review; a rating change re-balances the film aggregate
// in the same unit of work.
func (s *reviewService) Update(ctx context.Context, actor Actor, reviewID string, req dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 10 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 10", apperrors.ErrInvalidRequest)
	}

	var updated *models.Review
	var filmID string
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		review, err := tx.Reviews().GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review", apperrors.ErrNotFound)
			}
			return err
		}
		if err := s.policy.RequireOwner(actor, review.UserID); err != nil {
			return err
		}
		filmID = review.FilmID

		if err := tx.Reviews().UpdateContent(review.ID, req.Rating, req.Comment); err != nil {
			return err
		}

		if review.Rating != req.Rating {
			film, err := tx.Films().GetByID(review.FilmID)
			if err != nil {
				return err
			}
			agg := applyRatingChange(aggregateOf(film.Rating, film.RatingCount), review.Rating, req.Rating)
			if err := tx.Films().UpdateAggregate(film.ID, film.Version, agg.Rating, agg.Count); err != nil {
				return err
			}
		}

		review.Rating = req.Rating
		review.Comment = req.Comment
		updated = review
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return dto.FromModelToReviewResponse(updated), nil
}

// Delete removes an own review, its reactions, and the review's contribution
// to the film aggregate, atomically.
func (s *reviewService) Delete(ctx context.Context, actor Actor, reviewID string) error {
	var filmID string
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		review, err := tx.Reviews().GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review", apperrors.ErrNotFound)
			}
			return err
		}
		if err := s.policy.RequireOwner(actor, review.UserID); err != nil {
			return err
		}
		filmID = review.FilmID

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
		return tx.Films().UpdateAggregate(film.ID, film.Version, agg.Rating, agg.Count)
	})
	if err != nil {
		return err
	}

	s.filmCache.Invalidate(ctx, filmID)
	return nil
}

func (s *reviewService) GetByID(ctx context.Context, reviewID string) (*dto.ReviewResponse, error) {
	var resp *dto.ReviewResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		review, err := tx.Reviews().GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review", apperrors.ErrNotFound)
			}
			return err
		}
		resp = dto.FromModelToReviewResponse(review)
		return nil
	})
	return resp, err
}

func (s *reviewService) ListByFilm(ctx context.Context, filmID string, p dto.Pagination) (*dto.PaginatedReviewResponse, error) {
	var resp *dto.PaginatedReviewResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		if _, err := tx.Films().GetByID(filmID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: film", apperrors.ErrNotFound)
			}
			return err
		}
		reviews, total, err := tx.Reviews().ListByFilm(filmID, p.Offset, p.Limit)
		if err != nil {
			return err
		}
		resp = dto.NewPaginatedReviewResponse(toReviewResponses(reviews), p, total)
		return nil
	})
	return resp, err
}

func (s *reviewService) ListByUser(ctx context.Context, username string, p dto.Pagination) (*dto.PaginatedReviewResponse, error) {
	var resp *dto.PaginatedReviewResponse
	err := s.uow.Do(ctx, func(tx repository.Tx) error {
		user, err := tx.Users().FindByUsername(username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: user", apperrors.ErrNotFound)
			}
			return err
		}
		reviews, total, err := tx.Reviews().ListByUser(user.ID, p.Offset, p.Limit)
		if err != nil {
			return err
		}
		resp = dto.NewPaginatedReviewResponse(toReviewResponses(reviews), p, total)
		return nil
	})
	return resp, err
}

func toReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	return out
}
