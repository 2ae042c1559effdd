package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookshelf/internal/domain"
	"bookshelf/internal/modules/auth"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) GenerateTokensForGuest(ctx context.Context, userID int64) (*auth.Tokens, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Tokens), args.Error(1)
}

func TestService_Signup_Success(t *testing.T) {
	users := new(mockUserStore)
	issuer := new(mockTokenIssuer)

	users.On("ExistsByName", mock.Anything, "aaaaaa11").Return(false, nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		// The password is stored hashed, never raw.
		return u.Name == "aaaaaa11" &&
			u.PasswordHash != "aaaaaa11" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("aaaaaa11")) == nil
	})).Return(nil)

	service := NewService(users, issuer)

	require.NoError(t, service.Signup(context.Background(), "aaaaaa11", "aaaaaa11"))
	users.AssertExpectations(t)
}

func TestService_Signup_DuplicateName(t *testing.T) {
	users := new(mockUserStore)
	issuer := new(mockTokenIssuer)

	users.On("ExistsByName", mock.Anything, "aaaaaa11").Return(true, nil)

	service := NewService(users, issuer)

	err := service.Signup(context.Background(), "aaaaaa11", "aaaaaa11")

	assert.ErrorIs(t, err, ErrUserExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateGuestAccount(t *testing.T) {
	users := new(mockUserStore)
	issuer := new(mockTokenIssuer)

	var created *domain.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.User)
		created.ID = 55 // the store assigns the identifier
	}).Return(nil)
	issuer.On("GenerateTokensForGuest", mock.Anything, int64(55)).
		Return(&auth.Tokens{AccessToken: "guest-access", RefreshToken: "guest-refresh"}, nil)

	service := NewService(users, issuer)

	tokens, err := service.CreateGuestAccount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "guest-access", tokens.AccessToken)
	assert.Equal(t, "guest-refresh", tokens.RefreshToken)

	require.NotNil(t, created)
	assert.True(t, strings.HasPrefix(created.Name, "guest_"))
	assert.NotEmpty(t, created.PasswordHash)

	issuer.AssertExpectations(t)
}

func TestService_CreateGuestAccount_UniqueNames(t *testing.T) {
	users := new(mockUserStore)
	issuer := new(mockTokenIssuer)

	seen := map[string]bool{}
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		assert.False(t, seen[u.Name], "guest name collided: %s", u.Name)
		seen[u.Name] = true
		u.ID = int64(len(seen))
	}).Return(nil)
	issuer.On("GenerateTokensForGuest", mock.Anything, mock.Anything).
		Return(&auth.Tokens{AccessToken: "a", RefreshToken: "r"}, nil)

	service := NewService(users, issuer)

	for range 10 {
		_, err := service.CreateGuestAccount(context.Background())
		require.NoError(t, err)
	}
}
