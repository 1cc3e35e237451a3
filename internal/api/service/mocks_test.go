package service

import (
	"context"

	"filmhub/internal/api/models"
	"filmhub/internal/api/repository"

	"github.com/stretchr/testify/mock"
)

// Mock repositories

type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) Create(film *models.Film) error {
	args := m.Called(film)
	return args.Error(0)
}

func (m *MockFilmRepository) GetByID(id string) (*models.Film, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetAll(offset, limit int) ([]models.Film, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Film), args.Get(1).(int64), args.Error(2)
}

func (m *MockFilmRepository) UpdateMetadata(film *models.Film) error {
	args := m.Called(film)
	return args.Error(0)
}

func (m *MockFilmRepository) UpdateAggregate(filmID string, expectedVersion int64, rating *float64, ratingCount int) error {
	args := m.Called(filmID, expectedVersion, rating, ratingCount)
	return args.Error(0)
}

func (m *MockFilmRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFilmRepository) ReplaceGenres(filmID string, genreIDs []int64) error {
	args := m.Called(filmID, genreIDs)
	return args.Error(0)
}

func (m *MockFilmRepository) AddImage(image *models.FilmImage) error {
	args := m.Called(image)
	return args.Error(0)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	if review != nil && review.ID == "" {
		review.ID = "review-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(id string) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndFilm(userID, filmID string) (*models.Review, error) {
	args := m.Called(userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByFilm(filmID string, offset, limit int) ([]models.Review, int64, error) {
	args := m.Called(filmID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) ListByUser(userID string, offset, limit int) ([]models.Review, int64, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) AllByUser(userID string) ([]models.Review, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) UpdateContent(reviewID string, rating int, comment *string) error {
	args := m.Called(reviewID, rating, comment)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateCounters(reviewID string, expectedVersion int64, likeCount, dislikeCount int) error {
	args := m.Called(reviewID, expectedVersion, likeCount, dislikeCount)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(reviewID string) error {
	args := m.Called(reviewID)
	return args.Error(0)
}

type MockReactionRepository struct {
	mock.Mock
}

func (m *MockReactionRepository) Create(reaction *models.Reaction) error {
	args := m.Called(reaction)
	if reaction != nil && reaction.ID == 0 {
		reaction.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReactionRepository) GetByUserAndReview(userID, reviewID string) (*models.Reaction, error) {
	args := m.Called(userID, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reaction), args.Error(1)
}

func (m *MockReactionRepository) UpdateType(reactionID int64, reactionType string) error {
	args := m.Called(reactionID, reactionType)
	return args.Error(0)
}

func (m *MockReactionRepository) Delete(reactionID int64) error {
	args := m.Called(reactionID)
	return args.Error(0)
}

func (m *MockReactionRepository) DeleteByReview(reviewID string) error {
	args := m.Called(reviewID)
	return args.Error(0)
}

func (m *MockReactionRepository) AllByUser(userID string) ([]models.Reaction, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reaction), args.Error(1)
}

type MockUserFilmRepository struct {
	mock.Mock
}

func (m *MockUserFilmRepository) Create(userFilm *models.UserFilm) error {
	args := m.Called(userFilm)
	return args.Error(0)
}

func (m *MockUserFilmRepository) Get(userID, filmID string) (*models.UserFilm, error) {
	args := m.Called(userID, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserFilm), args.Error(1)
}

func (m *MockUserFilmRepository) ListByUser(userID string, offset, limit int) ([]models.UserFilm, int64, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.UserFilm), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserFilmRepository) UpdateState(userID, filmID string, expectedVersion int64, status string, progress int) error {
	args := m.Called(userID, filmID, expectedVersion, status, progress)
	return args.Error(0)
}

func (m *MockUserFilmRepository) Delete(userID, filmID string) error {
	args := m.Called(userID, filmID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(id, passwordHash string) error {
	args := m.Called(id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) Create(genre *models.Genre) error {
	args := m.Called(genre)
	return args.Error(0)
}

func (m *MockGenreRepository) GetByID(id int64) (*models.Genre, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByName(name string) (*models.Genre, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetAll() ([]models.Genre, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Rename(id int64, name string) error {
	args := m.Called(id, name)
	return args.Error(0)
}

// mockTx bundles the mocks into a repository.Tx.
type mockTx struct {
	users     *MockUserRepository
	films     *MockFilmRepository
	genres    *MockGenreRepository
	userFilms *MockUserFilmRepository
	reviews   *MockReviewRepository
	reactions *MockReactionRepository
}

func newMockTx() *mockTx {
	return &mockTx{
		users:     new(MockUserRepository),
		films:     new(MockFilmRepository),
		genres:    new(MockGenreRepository),
		userFilms: new(MockUserFilmRepository),
		reviews:   new(MockReviewRepository),
		reactions: new(MockReactionRepository),
	}
}

func (t *mockTx) Users() repository.UserRepository         { return t.users }
func (t *mockTx) Films() repository.FilmRepository         { return t.films }
func (t *mockTx) Genres() repository.GenreRepository       { return t.genres }
func (t *mockTx) UserFilms() repository.UserFilmRepository { return t.userFilms }
func (t *mockTx) Reviews() repository.ReviewRepository     { return t.reviews }
func (t *mockTx) Reactions() repository.ReactionRepository { return t.reactions }

// mockUnitOfWork runs the unit body directly against the mock Tx. There is
// no rollback; assertions look at which calls were made.
type mockUnitOfWork struct {
	tx *mockTx
}

func newMockUnitOfWork() *mockUnitOfWork {
	return &mockUnitOfWork{tx: newMockTx()}
}

func (u *mockUnitOfWork) Do(ctx context.Context, fn func(tx repository.Tx) error) error {
	return fn(u.tx)
}
