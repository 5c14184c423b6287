package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gigflare/internal/models"
	"gigflare/utils"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetActorByID(ctx context.Context, id string) (models.Actor, error)
	CreateSession(ctx context.Context, s models.Session) error
	GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error)
}

type UserService struct {
	UserRepo UserStore
	Tokens   *utils.Manager
}

func (s *UserService) SignUp(ctx context.Context, dto models.SignUpRequest) (models.User, models.TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        dto.Email,
		PasswordHash: string(hash),
		Role:         dto.Role,
		Username:     dto.Username,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	pair, err := s.issueTokens(ctx, created)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return created, pair, nil
}

func (s *UserService) SignIn(ctx context.Context, dto models.SignInRequest) (models.User, models.TokenPair, error) {
	user, err := s.UserRepo.GetUserByEmail(ctx, dto.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, models.TokenPair{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	if user.Banned {
		return models.User{}, models.TokenPair{}, models.ErrForbidden
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return models.User{}, models.TokenPair{}, models.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh exchanges a live refresh token for a fresh access token. Used by
// the auth middleware when the presented access token has expired.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (string, models.Claims, error) {
	session, err := s.UserRepo.GetSessionByToken(ctx, refreshToken)
	if err != nil {
		return "", models.Claims{}, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		return "", models.Claims{}, models.ErrInvalidCredentials
	}

	actor, err := s.UserRepo.GetActorByID(ctx, session.UserID)
	if err != nil {
		return "", models.Claims{}, err
	}

	access, err := s.Tokens.NewAccessToken(actor.ID, actor.Role)
	if err != nil {
		return "", models.Claims{}, err
	}
	return access, models.Claims{UserID: actor.ID, Role: actor.Role}, nil
}

func (s *UserService) GetActorByID(ctx context.Context, id string) (models.Actor, error) {
	return s.UserRepo.GetActorByID(ctx, id)
}

func (s *UserService) issueTokens(ctx context.Context, user models.User) (models.TokenPair, error) {
	access, err := s.Tokens.NewAccessToken(user.ID, user.Role)
	if err != nil {
		return models.TokenPair{}, err
	}
	refresh, err := s.Tokens.NewRefreshToken()
	if err != nil {
		return models.TokenPair{}, err
	}
	err = s.UserRepo.CreateSession(ctx, models.Session{
		UserID:       user.ID,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.Tokens.RefreshTTL()),
	})
	if err != nil {
		return models.TokenPair{}, err
	}
	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
