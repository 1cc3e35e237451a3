package service

import (
	"testing"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateWatchState(t *testing.T) {
	airing := &models.Film{AirStatus: models.AirStatusAiring, EpisodeCount: intPtr(12)}
	unaired := &models.Film{AirStatus: models.AirStatusNotYetAired}
	openEnded := &models.Film{AirStatus: models.AirStatusAiring} // episode count unknown

	tests := []struct {
		name     string
		film     *models.Film
		status   string
		progress int
		wantErr  error
	}{
		{"watching with progress", airing, models.WatchStatusWatching, 5, nil},
		{"completed at full length", airing, models.WatchStatusCompleted, 12, nil},
		{"plan to watch at zero", airing, models.WatchStatusPlanToWatch, 0, nil},
		{"unknown status", airing, "binge_watching", 0, apperrors.ErrInvalidRequest},
		{"negative progress", airing, models.WatchStatusWatching, -1, apperrors.ErrInvalidRequest},
		{"progress past episode count", airing, models.WatchStatusWatching, 13, apperrors.ErrInvalidState},
		{"unknown episode count allows any progress", openEnded, models.WatchStatusWatching, 500, nil},
		{"unaired only plans", unaired, models.WatchStatusPlanToWatch, 0, nil},
		{"unaired rejects watching", unaired, models.WatchStatusWatching, 0, apperrors.ErrInvalidState},
		{"unaired rejects completed", unaired, models.WatchStatusCompleted, 0, apperrors.ErrInvalidState},
		{"unaired rejects progress", unaired, models.WatchStatusPlanToWatch, 1, apperrors.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWatchState(tt.film, tt.status, tt.progress)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
