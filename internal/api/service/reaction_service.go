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

// ReactionService is the ledger behind review like/dislike counters. It
// keeps like_count + dislike_count equal to the number of reaction rows for
// the review; the review's version column serializes concurrent reactions.
type ReactionService interface {
	React(ctx context.Context, actor Actor, reviewID, reactionType string) (*dto.ReactionResponse, error)
	Unreact(ctx context.Context, actor Actor, reviewID string) (*dto.ReactionResponse, error)
}

type reactionService struct {
	uow repository.UnitOfWork
}

func NewReactionService(uow repository.UnitOfWork) ReactionService {
	return &reactionService{uow: uow}
}

// React places a reaction. A second identical reaction is a conflict (the
// caller must un-react first); a reaction of the other type is switched in
// place, moving one count between the counters.
func (s *reactionService) React(ctx context.Context, actor Actor, reviewID, reactionType string) (*dto.ReactionResponse, error) {
	if !models.ValidReactionType(reactionType) {
		return nil, fmt.Errorf("%w: unknown reaction type %q", apperrors.ErrInvalidRequest, reactionType)
	}

	var resp *dto.ReactionResponse
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		review, err := tx.Reviews().GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review", apperrors.ErrNotFound)
			}
			return err
		}

		likes, dislikes := review.LikeCount, review.DislikeCount

		existing, err := tx.Reactions().GetByUserAndReview(actor.ID, reviewID)
		switch {
		case err == nil:
			if existing.ReactionType == reactionType {
				return fmt.Errorf("%w: already reacted with %s, un-react first", apperrors.ErrConflict, reactionType)
			}
			// switch in place: old counter down, new counter up, same row
			if existing.ReactionType == models.ReactionLike {
				likes--
			} else {
				dislikes--
			}
			if err := tx.Reactions().UpdateType(existing.ID, reactionType); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			reaction := models.Reaction{
				UserID:       actor.ID,
				ReviewID:     reviewID,
				ReactionType: reactionType,
			}
			if err := tx.Reactions().Create(&reaction); err != nil {
				return err
			}
		default:
			return err
		}

		if reactionType == models.ReactionLike {
			likes++
		} else {
			dislikes++
		}

		if err := tx.Reviews().UpdateCounters(review.ID, review.Version, likes, dislikes); err != nil {
			return err
		}

		resp = &dto.ReactionResponse{
			ReviewID:     reviewID,
			ReactionType: reactionType,
			LikeCount:    likes,
			DislikeCount: dislikes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Unreact removes the actor's reaction, decrementing exactly the counter it
// was held against.
func (s *reactionService) Unreact(ctx context.Context, actor Actor, reviewID string) (*dto.ReactionResponse, error) {
	var resp *dto.ReactionResponse
	err := withAggregateRetry(ctx, s.uow, func(tx repository.Tx) error {
		review, err := tx.Reviews().GetByID(reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: review", apperrors.ErrNotFound)
			}
			return err
		}

		existing, err := tx.Reactions().GetByUserAndReview(actor.ID, reviewID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: reaction", apperrors.ErrNotFound)
			}
			return err
		}

		likes, dislikes := review.LikeCount, review.DislikeCount
		if existing.ReactionType == models.ReactionLike {
			likes--
		} else {
			dislikes--
		}

		if err := tx.Reactions().Delete(existing.ID); err != nil {
			return err
		}
		if err := tx.Reviews().UpdateCounters(review.ID, review.Version, likes, dislikes); err != nil {
			return err
		}

		resp = &dto.ReactionResponse{
			ReviewID:     reviewID,
			LikeCount:    likes,
			DislikeCount: dislikes,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
