package auth

import (
	"context"
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/user"
	"github.com/albapay/albapay-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = "user-created"
	f.byEmail[u.Email] = u
	return u, nil
}
func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestService(repo *fakeUserRepo) user.UserService {
	return NewAuthService(repo, jwt.NewJWTService("test-secret", "1h"))
}

func TestRegister(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{}}
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Choi",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-created", resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))

	// Passwords are stored hashed, never verbatim.
	stored := repo.byEmail["owner@example.com"]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"owner@example.com": {ID: "user-1", Email: "owner@example.com"},
	}}
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), user.RegisterRequest{
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Choi",
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{byEmail: map[string]user.User{
		"owner@example.com": {ID: "user-1", Email: "owner@example.com", PasswordHash: string(hash), Name: "Choi"},
	}}
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
