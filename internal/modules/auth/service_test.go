package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bookshelf/internal/domain"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) UpdateRefreshToken(ctx context.Context, userID int64, refreshToken *string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}

type mockTokenGen struct {
	mock.Mock
}

func (m *mockTokenGen) Generate(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Signin_Success(t *testing.T) {
	users := new(mockUserStore)
	access := new(mockTokenGen)
	refresh := new(mockTokenGen)

	stored := &domain.User{ID: 7, Name: "aaaaaa11", PasswordHash: hashOf(t, "aaaaaa11")}
	users.On("GetByName", mock.Anything, "aaaaaa11").Return(stored, nil)

	var calls []string
	refresh.On("Generate", int64(7)).Run(func(mock.Arguments) {
		calls = append(calls, "refresh")
	}).Return("signed-refresh", nil)
	access.On("Generate", int64(7)).Run(func(mock.Arguments) {
		calls = append(calls, "access")
	}).Return("signed-access", nil)
	users.On("UpdateRefreshToken", mock.Anything, int64(7), mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "signed-refresh"
	})).Run(func(mock.Arguments) {
		calls = append(calls, "persist")
	}).Return(nil)

	service := NewService(users, access, refresh)

	tokens, err := service.Signin(context.Background(), "aaaaaa11", "aaaaaa11")

	require.NoError(t, err)
	assert.Equal(t, "signed-access", tokens.AccessToken)
	assert.Equal(t, "signed-refresh", tokens.RefreshToken)
	// Refresh token is created and persisted before the access token exists.
	assert.Equal(t, []string{"refresh", "persist", "access"}, calls)

	users.AssertExpectations(t)
	users.AssertNumberOfCalls(t, "UpdateRefreshToken", 1)
}

func TestService_Signin_UnknownUser(t *testing.T) {
	users := new(mockUserStore)
	access := new(mockTokenGen)
	refresh := new(mockTokenGen)

	users.On("GetByName", mock.Anything, "nobody77").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(users, access, refresh)

	tokens, err := service.Signin(context.Background(), "nobody77", "whatever1")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, tokens)
	// Short-circuit: no token issuance, no persistence.
	access.AssertNotCalled(t, "Generate", mock.Anything)
	refresh.AssertNotCalled(t, "Generate", mock.Anything)
	users.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Signin_WrongPassword(t *testing.T) {
	users := new(mockUserStore)
	access := new(mockTokenGen)
	refresh := new(mockTokenGen)

	stored := &domain.User{ID: 7, Name: "aaaaaa11", PasswordHash: hashOf(t, "aaaaaa11")}
	users.On("GetByName", mock.Anything, "aaaaaa11").Return(stored, nil)

	service := NewService(users, access, refresh)

	tokens, err := service.Signin(context.Background(), "aaaaaa11", "wrong-password1")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Nil(t, tokens)
	access.AssertNotCalled(t, "Generate", mock.Anything)
	refresh.AssertNotCalled(t, "Generate", mock.Anything)
	users.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Signin_StoreError(t *testing.T) {
	users := new(mockUserStore)
	access := new(mockTokenGen)
	refresh := new(mockTokenGen)

	users.On("GetByName", mock.Anything, "aaaaaa11").Return(nil, gorm.ErrInvalidDB)

	service := NewService(users, access, refresh)

	_, err := service.Signin(context.Background(), "aaaaaa11", "aaaaaa11")

	// Store errors propagate unchanged, never squashed into a domain error.
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}

func TestService_GenerateTokensForGuest(t *testing.T) {
	users := new(mockUserStore)
	access := new(mockTokenGen)
	refresh := new(mockTokenGen)

	refresh.On("Generate", int64(99)).Return("guest-refresh", nil)
	access.On("Generate", int64(99)).Return("guest-access", nil)
	users.On("UpdateRefreshToken", mock.Anything, int64(99), mock.Anything).Return(nil)

	service := NewService(users, access, refresh)

	tokens, err := service.GenerateTokensForGuest(context.Background(), 99)

	require.NoError(t, err)
	assert.Equal(t, "guest-access", tokens.AccessToken)
	assert.Equal(t, "guest-refresh", tokens.RefreshToken)
	// No GetByName: guests skip credential verification entirely.
	users.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestService_Logout_Idempotent(t *testing.T) {
	users := new(mockUserStore)

	users.On("UpdateRefreshToken", mock.Anything, int64(7), (*string)(nil)).Return(nil)

	service := NewService(users, new(mockTokenGen), new(mockTokenGen))

	require.NoError(t, service.Logout(context.Background(), 7))
	// A second logout with nothing stored is still not an error.
	require.NoError(t, service.Logout(context.Background(), 7))

	users.AssertNumberOfCalls(t, "UpdateRefreshToken", 2)
}
