package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleClient     = "CLIENT"
	RoleFreelancer = "FREELANCER"
	RoleAdmin      = "ADMIN"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Username     string     `json:"username"`
	AvatarURL    *string    `json:"avatar_url,omitempty"`
	Banned       bool       `json:"banned"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Actor is the per-request identity the write paths and visibility scoping
// run against. Verified is derived from the verification timestamp.
type Actor struct {
	ID       string
	Role     string
	Banned   bool
	Verified bool
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanSell reports whether the actor may create gig listings.
func (a Actor) CanSell() bool {
	return a.Role == RoleFreelancer || a.Role == RoleAdmin
}

// CanPost reports whether the actor may create work requests.
func (a Actor) CanPost() bool {
	return a.Role == RoleClient || a.Role == RoleAdmin
}

type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Session struct {
	UserID       string
	RefreshToken string
	ExpiresAt    time.Time
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// OwnerInfo is the public slice of the owning user joined into list rows.
type OwnerInfo struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
