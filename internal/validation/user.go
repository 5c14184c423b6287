package validation

import (
	"net/mail"
	"strings"

	"gigflare/internal/models"
)

// ValidateSignUp checks and normalizes a registration payload in place.
// Admin accounts are never self-served.
func ValidateSignUp(dto *models.SignUpRequest) Errors {
	var errs Errors

	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if _, err := mail.ParseAddress(dto.Email); err != nil {
		errs.add("email", "must be a valid email address")
	}
	if len(dto.Password) < 8 || len(dto.Password) > 72 {
		errs.add("password", "must be 8-72 characters")
	}
	dto.Username = strings.ToLower(strings.TrimSpace(dto.Username))
	if len(dto.Username) < 3 || len(dto.Username) > 24 {
		errs.add("username", "must be 3-24 characters")
	}
	if dto.Role == "" {
		dto.Role = models.RoleClient
	} else if !oneOf(dto.Role, models.RoleClient, models.RoleFreelancer) {
		errs.add("role", "must be CLIENT or FREELANCER")
	}

	return errs
}

func ValidateSignIn(dto *models.SignInRequest) Errors {
	var errs Errors

	dto.Email = strings.ToLower(strings.TrimSpace(dto.Email))
	if dto.Email == "" {
		errs.add("email", "is required")
	}
	if dto.Password == "" {
		errs.add("password", "is required")
	}

	return errs
}
