package service

import (
	"context"
	"errors"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/repository"
)

// maxAggregateRetries bounds how often a unit of work is re-run after losing
// a version check to a concurrent writer. Past the bound the caller sees
// ErrConcurrency and may retry itself.
const maxAggregateRetries = 5

func withAggregateRetry(ctx context.Context, uow repository.UnitOfWork, fn func(tx repository.Tx) error) error {
	var err error
	for attempt := 0; attempt < maxAggregateRetries; attempt++ {
		err = uow.Do(ctx, fn)
		if !errors.Is(err, apperrors.ErrConcurrency) {
			return err
		}
	}
	return err
}
