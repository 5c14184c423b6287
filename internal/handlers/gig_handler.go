package handlers

import (
	"net/http"

	"gigflare/internal/models"
	"gigflare/internal/query"
	"gigflare/internal/ratelimit"
	"gigflare/internal/services"
	"gigflare/internal/validation"
)

type GigHandler struct {
	Service     *services.GigService
	ListLimit   *ratelimit.Limiter
	CreateLimit *ratelimit.Limiter
}

// ListGigs serves the public catalog. The limiter is keyed by caller IP and
// rejects with 400, which the storefront frontend expects on this endpoint.
func (h *GigHandler) ListGigs(w http.ResponseWriter, r *http.Request) {
	res := checkLimit(w, r, h.ListLimit, clientIP(r))
	if !res.Allowed {
		writeError(w, http.StatusBadRequest, "Rate limit exceeded")
		return
	}

	params, errs := validation.ParseGigListQuery(r.URL.Query())
	if errs != nil {
		writeValidationError(w, "Invalid query parameters", errs)
		return
	}

	scope := query.Scope{}
	actor, authed := ActorFrom(r.Context())
	if authed {
		scope = query.ScopeFor(actor)
	}
	if params.Mine && !authed {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	resp, err := h.Service.ListGigs(r.Context(), params, scope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *GigHandler) CreateGig(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if !actor.CanSell() {
		writeError(w, http.StatusForbidden, "Only freelancers can create gigs")
		return
	}

	res := checkLimit(w, r, h.CreateLimit, actor.ID)
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto models.CreateGigRequest
	if !readBody(w, r, &dto) {
		return
	}
	if errs := validation.ValidateCreateGig(&dto); errs != nil {
		writeValidationError(w, "Validation failed", errs)
		return
	}

	gig, err := h.Service.CreateGig(r.Context(), actor, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, gig)
}

func (h *GigHandler) GetGigBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get(":slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "Missing slug")
		return
	}

	gig, err := h.Service.GetGigBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gig)
}
