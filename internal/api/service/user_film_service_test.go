package service

import (
	"context"
	"testing"

	"filmhub/internal/api/apperrors"
	"filmhub/internal/api/dto"
	"filmhub/internal/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserFilmService(uow *mockUnitOfWork) UserFilmService {
	return NewUserFilmService(uow, NewAccessPolicy(nil), nil)
}

func TestUserFilmAdd(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	film := &models.Film{ID: "f1", AirStatus: models.AirStatusAiring, EpisodeCount: intPtr(10)}
	uow.tx.films.On("GetByID", "f1").Return(film, nil)
	uow.tx.userFilms.On("Create", mock.AnythingOfType("*models.UserFilm")).Return(nil)

	resp, err := svc.Add(context.Background(), Actor{ID: "u1"}, "f1",
		dto.AddUserFilmRequest{Status: models.WatchStatusWatching, Progress: 3})
	require.NoError(t, err)
	assert.Equal(t, models.WatchStatusWatching, resp.Status)
	assert.Equal(t, 3, resp.Progress)
}

func TestUserFilmAdd_UnairedFilmOnlyPlans(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	film := &models.Film{ID: "f1", AirStatus: models.AirStatusNotYetAired}
	uow.tx.films.On("GetByID", "f1").Return(film, nil)

	_, err := svc.Add(context.Background(), Actor{ID: "u1"}, "f1",
		dto.AddUserFilmRequest{Status: models.WatchStatusWatching, Progress: 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	uow.tx.userFilms.AssertNotCalled(t, "Create", mock.Anything)

	// planning ahead is fine
	uow.tx.userFilms.On("Create", mock.AnythingOfType("*models.UserFilm")).Return(nil)
	_, err = svc.Add(context.Background(), Actor{ID: "u1"}, "f1",
		dto.AddUserFilmRequest{Status: models.WatchStatusPlanToWatch, Progress: 0})
	assert.NoError(t, err)
}

func TestUserFilmUpdate_VersionGuardsState(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	entry := &models.UserFilm{UserID: "u1", FilmID: "f1", Status: models.WatchStatusWatching, Progress: 3, Version: 4}
	film := &models.Film{ID: "f1", AirStatus: models.AirStatusFinishedAiring, EpisodeCount: intPtr(10)}

	uow.tx.userFilms.On("Get", "u1", "f1").Return(entry, nil)
	uow.tx.films.On("GetByID", "f1").Return(film, nil)
	uow.tx.userFilms.On("UpdateState", "u1", "f1", int64(4), models.WatchStatusCompleted, 10).Return(nil)

	resp, err := svc.Update(context.Background(), Actor{ID: "u1"}, "f1",
		dto.UpdateUserFilmRequest{Status: models.WatchStatusCompleted, Progress: 10})
	require.NoError(t, err)
	assert.Equal(t, models.WatchStatusCompleted, resp.Status)
	uow.tx.userFilms.AssertExpectations(t)
}

func TestUserFilmUpdate_MissingEntry(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	uow.tx.userFilms.On("Get", "u1", "f1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), Actor{ID: "u1"}, "f1",
		dto.UpdateUserFilmRequest{Status: models.WatchStatusWatching, Progress: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserFilmRemove_CascadesOwnReview(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	entry := &models.UserFilm{UserID: "u1", FilmID: "f1", Status: models.WatchStatusCompleted}
	review := &models.Review{ID: "r1", UserID: "u1", FilmID: "f1", Rating: 6}
	film := &models.Film{ID: "f1", Rating: ratingPtr(8.0), RatingCount: 2, Version: 9}

	uow.tx.userFilms.On("Get", "u1", "f1").Return(entry, nil)
	uow.tx.reviews.On("GetByUserAndFilm", "u1", "f1").Return(review, nil)
	uow.tx.films.On("GetByID", "f1").Return(film, nil)
	uow.tx.reactions.On("DeleteByReview", "r1").Return(nil)
	uow.tx.reviews.On("Delete", "r1").Return(nil)
	uow.tx.films.On("UpdateAggregate", "f1", int64(9), mock.AnythingOfType("*float64"), 1).
		Run(func(args mock.Arguments) {
			rating := args.Get(2).(*float64)
			assert.InDelta(t, 10.0, *rating, 1e-9)
		}).
		Return(nil)
	uow.tx.userFilms.On("Delete", "u1", "f1").Return(nil)

	err := svc.Remove(context.Background(), Actor{ID: "u1"}, "f1")
	require.NoError(t, err)
	uow.tx.films.AssertExpectations(t)
	uow.tx.userFilms.AssertExpectations(t)
}

func TestUserFilmRemove_NoReview(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	entry := &models.UserFilm{UserID: "u1", FilmID: "f1", Status: models.WatchStatusWatching}
	uow.tx.userFilms.On("Get", "u1", "f1").Return(entry, nil)
	uow.tx.reviews.On("GetByUserAndFilm", "u1", "f1").Return(nil, gorm.ErrRecordNotFound)
	uow.tx.userFilms.On("Delete", "u1", "f1").Return(nil)

	err := svc.Remove(context.Background(), Actor{ID: "u1"}, "f1")
	require.NoError(t, err)
	uow.tx.films.AssertNotCalled(t, "UpdateAggregate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserFilmListByUser_PrivateProfile(t *testing.T) {
	uow := newMockUnitOfWork()
	svc := newUserFilmService(uow)

	owner := &models.User{ID: "u1", Username: "ada", IsPrivate: true}
	uow.tx.users.On("FindByUsername", "ada").Return(owner, nil)
	uow.tx.userFilms.On("ListByUser", "u1", 0, 20).Return([]models.UserFilm{}, int64(0), nil)

	p := dto.Pagination{Offset: 0, Limit: 20}

	// a stranger is refused
	_, err := svc.ListByUser(context.Background(), Actor{ID: "stranger"}, "ada", p)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	// the owner reads their own list
	resp, err := svc.ListByUser(context.Background(), Actor{ID: "u1"}, "ada", p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
}
