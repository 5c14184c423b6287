package handlers

import (
	"net/http"
	"time"

	"gigflare/internal/models"
	"gigflare/internal/query"
	"gigflare/internal/ratelimit"
	"gigflare/internal/services"
	"gigflare/internal/validation"
)

type RequestHandler struct {
	Service     *services.RequestService
	ListLimit   *ratelimit.Limiter
	CreateLimit *ratelimit.Limiter
}

func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	res := checkLimit(w, r, h.ListLimit, clientIP(r))
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	params, errs := validation.ParseRequestListQuery(r.URL.Query())
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

	resp, err := h.Service.ListRequests(r.Context(), params, scope)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if !actor.CanPost() {
		writeError(w, http.StatusForbidden, "Only clients can post requests")
		return
	}

	res := checkLimit(w, r, h.CreateLimit, actor.ID)
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto models.CreateRequestRequest
	if !readBody(w, r, &dto) {
		return
	}
	if errs := validation.ValidateCreateRequest(&dto, time.Now()); errs != nil {
		writeValidationError(w, "Validation failed", errs)
		return
	}

	req, err := h.Service.CreateRequest(r.Context(), actor, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

func (h *RequestHandler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing request id")
		return
	}

	req, err := h.Service.GetRequestByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
