package service

import (
	"fmt"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"
)

// validateWatchState decides whether a (status, progress) pair is a legal
// watch-list state for the given film. Both the add and the update path
// consult this one function.
func validateWatchState(film *models.Film, status string, progress int) error {
	if !models.ValidWatchStatus(status) {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidRequest, status)
	}
	if progress < 0 {
		return fmt.Errorf("%w: progress must not be negative", apperrors.ErrInvalidRequest)
	}
	if film.AirStatus == models.AirStatusNotYetAired {
		if status != models.WatchStatusPlanToWatch || progress != 0 {
			return fmt.Errorf("%w: film has not aired yet", apperrors.ErrInvalidState)
		}
	}
	if film.EpisodeCount != nil && progress > *film.EpisodeCount {
		return fmt.Errorf("%w: progress %d exceeds episode count %d",
			apperrors.ErrInvalidState, progress, *film.EpisodeCount)
	}
	return nil
}
