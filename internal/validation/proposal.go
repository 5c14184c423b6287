package validation

import (
	"net/url"
	"strings"

	"gigflare/internal/models"
)

// ParseProposalListQuery validates GET /proposals parameters. requestId is
// mandatory: proposals are only ever listed per request.
func ParseProposalListQuery(v url.Values) (models.ProposalListQuery, Errors) {
	var errs Errors
	q := models.ProposalListQuery{
		RequestID: strings.TrimSpace(v.Get("requestId")),
	}

	if q.RequestID == "" {
		errs.add("requestId", "is required")
	}
	q.Page = parsePage(v, &errs)
	q.PerPage = parsePerPage(v, 100, 20, &errs)

	if len(errs) > 0 {
		return models.ProposalListQuery{}, errs
	}
	return q, nil
}

// ValidateCreateProposal checks and normalizes a proposal payload in place.
// Currency defaulting is deferred to the service, which falls back to the
// referenced request's currency.
func ValidateCreateProposal(dto *models.CreateProposalRequest) Errors {
	var errs Errors

	dto.RequestID = strings.TrimSpace(dto.RequestID)
	if dto.RequestID == "" {
		errs.add("request_id", "is required")
	}
	dto.CoverLetter = strings.TrimSpace(dto.CoverLetter)
	if len(dto.CoverLetter) < 20 || len(dto.CoverLetter) > 6000 {
		errs.add("cover_letter", "must be 20-6000 characters")
	}
	if dto.Amount < 1 || dto.Amount > 1_000_000 {
		errs.add("amount", "must be between 1 and 1000000")
	}
	if dto.Currency != "" && !oneOf(dto.Currency, "INR", "USD") {
		errs.add("currency", "must be INR or USD")
	}
	if dto.EstimatedDays < 1 || dto.EstimatedDays > 120 {
		errs.add("estimated_days", "must be between 1 and 120")
	}

	return errs
}
