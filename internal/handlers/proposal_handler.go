package handlers

import (
	"net/http"

	"gigflare/internal/models"
	"gigflare/internal/ratelimit"
	"gigflare/internal/services"
	"gigflare/internal/validation"
)

type ProposalHandler struct {
	Service     *services.ProposalService
	ListLimit   *ratelimit.Limiter
	CreateLimit *ratelimit.Limiter
}

// ListProposals always runs authenticated. The limiter key combines the
// caller with the request being browsed so paging one thread does not starve
// access to another.
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	params, errs := validation.ParseProposalListQuery(r.URL.Query())
	if errs != nil {
		writeValidationError(w, "Invalid query parameters", errs)
		return
	}

	res := checkLimit(w, r, h.ListLimit, actor.ID+":"+params.RequestID)
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	resp, err := h.Service.ListProposals(r.Context(), params, actor)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ProposalHandler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if actor.Role != models.RoleFreelancer {
		writeError(w, http.StatusForbidden, "Only freelancers can submit proposals")
		return
	}

	res := checkLimit(w, r, h.CreateLimit, actor.ID)
	if !res.Allowed {
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	var dto models.CreateProposalRequest
	if !readBody(w, r, &dto) {
		return
	}
	if errs := validation.ValidateCreateProposal(&dto); errs != nil {
		writeValidationError(w, "Validation failed", errs)
		return
	}

	proposal, err := h.Service.CreateProposal(r.Context(), actor, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, proposal)
}
