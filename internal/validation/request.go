package validation

import (
	"net/url"
	"strings"
	"time"

	"gigflare/internal/models"
)

// ParseRequestListQuery validates GET /requests parameters.
func ParseRequestListQuery(v url.Values) (models.RequestListQuery, Errors) {
	var errs Errors
	q := models.RequestListQuery{
		Q:        strings.TrimSpace(v.Get("q")),
		Tags:     parseTagsCSV(v.Get("tags")),
		Category: strings.TrimSpace(v.Get("category")),
		Status:   v.Get("status"),
		ClientID: strings.TrimSpace(v.Get("clientId")),
		Sort:     v.Get("sort"),
		Mine:     v.Get("mine") == "true",
	}

	if len(q.Q) > 140 {
		errs.add("q", "must be at most 140 characters")
	}
	if len(q.Category) > 50 {
		errs.add("category", "must be at most 50 characters")
	}
	if q.Status != "" && !oneOf(q.Status,
		models.RequestStatusOpen, models.RequestStatusAssigned,
		models.RequestStatusClosed, models.RequestStatusCancelled) {
		errs.add("status", "must be one of OPEN, ASSIGNED, CLOSED, CANCELLED")
	}
	if m := v.Get("mine"); m != "" && !oneOf(m, "true", "false") {
		errs.add("mine", "must be true or false")
	}
	if q.Sort != "" && !oneOf(q.Sort, "new", "budget_asc", "budget_desc") {
		errs.add("sort", "must be one of new, budget_asc, budget_desc")
	}

	q.BudgetMin = parseOptionalMoney(v, "budgetMin", &errs)
	q.BudgetMax = parseOptionalMoney(v, "budgetMax", &errs)
	q.DueAfter = parseOptionalTime(v, "dueAfter", &errs)
	q.DueBefore = parseOptionalTime(v, "dueBefore", &errs)
	q.Page = parsePage(v, &errs)
	q.PerPage = parsePerPage(v, 50, 12, &errs)

	if len(errs) > 0 {
		return models.RequestListQuery{}, errs
	}
	return q, nil
}

func parseOptionalTime(v url.Values, name string, errs *Errors) *time.Time {
	raw := v.Get(name)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		errs.add(name, "must be an RFC 3339 datetime")
		return nil
	}
	return &t
}

// ValidateCreateRequest checks and normalizes a work-request creation
// payload in place. The deadline, when present, must still be in the future
// at validation time.
func ValidateCreateRequest(dto *models.CreateRequestRequest, now time.Time) Errors {
	var errs Errors

	dto.Title = strings.TrimSpace(dto.Title)
	if len(dto.Title) < 10 || len(dto.Title) > 140 {
		errs.add("title", "must be 10-140 characters")
	}
	dto.Description = strings.TrimSpace(dto.Description)
	if len(dto.Description) < 30 || len(dto.Description) > 800 {
		errs.add("description", "must be 30-800 characters")
	}
	if dto.BudgetMin != nil && *dto.BudgetMin < 0 {
		errs.add("budget_min", "must be non-negative")
	}
	if dto.BudgetMax != nil && *dto.BudgetMax < 0 {
		errs.add("budget_max", "must be non-negative")
	}
	if dto.BudgetMin != nil && dto.BudgetMax != nil && *dto.BudgetMin > *dto.BudgetMax {
		errs.add("budget_min", "must be less than or equal to budget_max")
	}
	if dto.Currency == "" {
		dto.Currency = "USD"
	} else if !oneOf(dto.Currency, "INR", "USD") {
		errs.add("currency", "must be INR or USD")
	}
	if dto.Deadline != nil && !dto.Deadline.After(now) {
		errs.add("deadline", "must be in the future")
	}
	dto.Tags = normalizeTags(dto.Tags, &errs)
	if dto.Category != nil {
		c := strings.TrimSpace(*dto.Category)
		dto.Category = &c
		if len(c) < 2 || len(c) > 50 {
			errs.add("category", "must be 2-50 characters")
		}
	}
	if len(dto.Attachments) > maxAttachments {
		errs.add("attachments", "at most 5 attachments allowed")
	}
	for _, a := range dto.Attachments {
		if !validURL(a) {
			errs.add("attachments", "each attachment must be a valid URL")
			break
		}
	}

	return errs
}
