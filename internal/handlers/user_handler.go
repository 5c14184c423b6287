package handlers

import (
	"net/http"

	"gigflare/internal/models"
	"gigflare/internal/ratelimit"
	"gigflare/internal/services"
	"gigflare/internal/validation"
)

type UserHandler struct {
	Service   *services.UserService
	AuthLimit *ratelimit.Limiter
}

type authResponse struct {
	User models.User `json:"user"`
	models.TokenPair
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	res := checkLimit(w, r, h.AuthLimit, clientIP(r))
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto models.SignUpRequest
	if !readBody(w, r, &dto) {
		return
	}
	if errs := validation.ValidateSignUp(&dto); errs != nil {
		writeValidationError(w, "Validation failed", errs)
		return
	}

	user, tokens, err := h.Service.SignUp(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{User: user, TokenPair: tokens})
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	res := checkLimit(w, r, h.AuthLimit, clientIP(r))
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto models.SignInRequest
	if !readBody(w, r, &dto) {
		return
	}
	if errs := validation.ValidateSignIn(&dto); errs != nil {
		writeValidationError(w, "Validation failed", errs)
		return
	}

	user, tokens, err := h.Service.SignIn(r.Context(), dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{User: user, TokenPair: tokens})
}
