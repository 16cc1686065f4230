package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/user"
	"github.com/albapay/albapay-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwtSvc   jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtSvc jwt.Service) user.UserService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
	}
}

func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return user.AuthResponse{}, err
	}

	if _, err := a.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return user.AuthResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.AuthResponse{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	})
	if err != nil {
		return user.AuthResponse{}, err
	}

	return a.issueToken(created)
}

func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.AuthResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.AuthResponse{}, user.ErrInvalidCredentials
		}
		return user.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.AuthResponse{}, user.ErrInvalidCredentials
	}

	return a.issueToken(userData)
}

func (a *AuthServiceImpl) issueToken(u user.User) (user.AuthResponse, error) {
	token, expiresAt, err := a.jwtSvc.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return user.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return user.AuthResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		Name:        u.Name,
	}, nil
}
