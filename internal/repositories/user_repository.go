package repositories

import (
	"context"
	"database/sql"
	"errors"

	"gigflare/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	q := `
        INSERT INTO users (id, email, password_hash, role, username, avatar_url, banned, verified_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err := r.DB.ExecContext(ctx, q,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Username,
		user.AvatarURL,
		user.Banned,
		user.VerifiedAt,
		user.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		if uniqueViolation(err, "users_username_key") {
			return models.User{}, models.ErrDuplicateUsername
		}
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRowContext(ctx, `
        SELECT id, email, password_hash, role, username, avatar_url, banned, verified_at, created_at
          FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Username, &u.AvatarURL, &u.Banned, &u.VerifiedAt, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, s models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
        INSERT INTO sessions (user_id, refresh_token, expires_at)
        VALUES ($1, $2, $3)`, s.UserID, s.RefreshToken, s.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, refresh_token, expires_at FROM sessions WHERE refresh_token = $1",
		refreshToken).Scan(&s.UserID, &s.RefreshToken, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// GetActorByID loads the identity slice the middleware attaches to each
// authenticated request.
func (r *UserRepository) GetActorByID(ctx context.Context, id string) (models.Actor, error) {
	var a models.Actor
	var verifiedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, role, banned, verified_at FROM users WHERE id = $1", id).
		Scan(&a.ID, &a.Role, &a.Banned, &verifiedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Actor{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.Actor{}, err
	}
	a.Verified = verifiedAt.Valid
	return a, nil
}
