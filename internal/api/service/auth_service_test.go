package service

import (
	"testing"
	"time"

	"filmhub/internal/api/models"
	"filmhub/internal/config"
	"filmhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret-that-is-long-enough-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestRegister(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "ada").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("FindByEmail", "ada@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("ada", "hunter2hunter2", "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.Password)
	assert.NoError(t, password.Verify(user.Password, "hunter2hunter2"))
}

func TestRegister_NameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "ada").Return(&models.User{ID: "u1", Username: "ada"}, nil)

	_, err := svc.Register("ada", "hunter2hunter2", "other@example.com")
	assert.ErrorIs(t, err, ErrNameInUse)
	userRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLoginAndValidate(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	hashed, err := password.Hash("hunter2hunter2")
	require.NoError(t, err)
	user := &models.User{ID: "u1", Username: "ada", Role: models.RoleUser, Password: hashed}

	userRepo.On("FindByUsername", "ada").Return(user, nil)
	tokenRepo.On("Create", mock.AnythingOfType("*models.RefreshToken")).Return(nil)

	access, refresh, got, err := svc.Login("ada", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.NotEmpty(t, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ada", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	hashed, err := password.Hash("correct-password")
	require.NoError(t, err)
	userRepo.On("FindByUsername", "ada").
		Return(&models.User{ID: "u1", Username: "ada", Password: hashed}, nil)

	_, _, _, err = svc.Login("ada", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	userRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, _, _, err := svc.Login("ghost", "whatever-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshAccessToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "t1",
		UserID:    "u1",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	tokenRepo.On("FindByToken", "refresh-token").Return(stored, nil)
	userRepo.On("FindByID", "u1").
		Return(&models.User{ID: "u1", Username: "ada", Role: models.RoleUser}, nil)

	access, err := svc.RefreshAccessToken("refresh-token")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestRefreshAccessToken_Revoked(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "t1",
		UserID:    "u1",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(time.Hour),
		Revoked:   true,
	}
	tokenRepo.On("FindByToken", "refresh-token").Return(stored, nil)

	_, err := svc.RefreshAccessToken("refresh-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshAccessToken_Expired(t *testing.T) {
	userRepo := new(MockUserRepository)
	tokenRepo := new(MockRefreshTokenRepository)
	svc := NewAuthService(userRepo, tokenRepo, testAuthConfig())

	stored := &models.RefreshToken{
		ID:        "t1",
		UserID:    "u1",
		Token:     "refresh-token",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	tokenRepo.On("FindByToken", "refresh-token").Return(stored, nil)
	tokenRepo.On("Delete", "t1").Return(nil)

	_, err := svc.RefreshAccessToken("refresh-token")
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), new(MockRefreshTokenRepository), testAuthConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(refreshToken *models.RefreshToken) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(tokenString string) (*models.RefreshToken, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) Delete(tokenID string) error {
	args := m.Called(tokenID)
	return args.Error(0)
}
