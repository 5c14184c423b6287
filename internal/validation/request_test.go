package validation

import (
	"net/url"
	"testing"
	"time"

	"gigflare/internal/models"
)

func TestParseRequestListQueryStatusEnum(t *testing.T) {
	if _, errs := ParseRequestListQuery(url.Values{"status": {"OPEN"}}); errs != nil {
		t.Fatal(errs)
	}
	_, errs := ParseRequestListQuery(url.Values{"status": {"open"}})
	if !hasFieldError(errs, "status") {
		t.Fatalf("lowercase status must be rejected, got %v", errs)
	}
}

func TestParseRequestListQueryDeadlineBounds(t *testing.T) {
	q, errs := ParseRequestListQuery(url.Values{"dueBefore": {"2026-12-01T00:00:00Z"}})
	if errs != nil {
		t.Fatal(errs)
	}
	if q.DueBefore == nil || q.DueBefore.Year() != 2026 {
		t.Fatalf("got dueBefore %v", q.DueBefore)
	}

	_, errs = ParseRequestListQuery(url.Values{"dueAfter": {"tomorrow"}})
	if !hasFieldError(errs, "dueAfter") {
		t.Fatalf("non-RFC3339 datetime must be rejected, got %v", errs)
	}
}

func TestValidateCreateRequestBudgetOrdering(t *testing.T) {
	min, max := 500.0, 100.0
	dto := models.CreateRequestRequest{
		Title:       "Need a landing page built",
		Description: "Single-page marketing site, copy and assets are ready to go.",
		BudgetMin:   &min,
		BudgetMax:   &max,
	}
	errs := ValidateCreateRequest(&dto, time.Now())
	if !hasFieldError(errs, "budget_min") {
		t.Fatalf("inverted budget range must be rejected, got %v", errs)
	}
}

func TestValidateCreateRequestDeadlineMustBeFuture(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	dto := models.CreateRequestRequest{
		Title:       "Need a landing page built",
		Description: "Single-page marketing site, copy and assets are ready to go.",
		Deadline:    &past,
	}
	errs := ValidateCreateRequest(&dto, now)
	if !hasFieldError(errs, "deadline") {
		t.Fatalf("past deadline must be rejected, got %v", errs)
	}
}

func TestValidateCreateRequestDefaultsCurrency(t *testing.T) {
	dto := models.CreateRequestRequest{
		Title:       "Need a landing page built",
		Description: "Single-page marketing site, copy and assets are ready to go.",
	}
	if errs := ValidateCreateRequest(&dto, time.Now()); errs != nil {
		t.Fatal(errs)
	}
	if dto.Currency != "USD" {
		t.Fatalf("got currency %q, want the USD default", dto.Currency)
	}
}

func TestValidateCreateProposalBounds(t *testing.T) {
	dto := models.CreateProposalRequest{
		CoverLetter:   "too short",
		Amount:        0.5,
		Currency:      "GBP",
		EstimatedDays: 0,
	}
	errs := ValidateCreateProposal(&dto)
	for _, field := range []string{"request_id", "cover_letter", "amount", "currency", "estimated_days"} {
		if !hasFieldError(errs, field) {
			t.Fatalf("expected an error for %s, got %v", field, errs)
		}
	}
}

func TestParseProposalListQueryRequiresRequest(t *testing.T) {
	_, errs := ParseProposalListQuery(url.Values{})
	if !hasFieldError(errs, "requestId") {
		t.Fatalf("missing requestId must be rejected, got %v", errs)
	}

	q, errs := ParseProposalListQuery(url.Values{"requestId": {"req-1"}})
	if errs != nil {
		t.Fatal(errs)
	}
	if q.PerPage != 20 {
		t.Fatalf("got perPage %d, want the default 20", q.PerPage)
	}
}
