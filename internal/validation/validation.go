// Package validation turns raw parameter bags and write payloads into
// normalized, range-checked values, or a per-field error list the handlers
// echo back to the client.
package validation

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	maxTags        = 10
	maxImages      = 10
	maxAttachments = 5
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// parseTagsCSV splits a comma-separated tag parameter, lowercases and trims
// each entry, drops entries outside the 2-20 char bound and caps the list.
func parseTagsCSV(csv string) []string {
	if csv == "" {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(csv, ",") {
		t := strings.ToLower(strings.TrimSpace(raw))
		if len(t) < 2 || len(t) > 20 {
			continue
		}
		tags = append(tags, t)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// normalizeTags lowercases payload tags in place and validates bounds.
func normalizeTags(tags []string, errs *Errors) []string {
	if len(tags) > maxTags {
		errs.add("tags", "at most "+strconv.Itoa(maxTags)+" tags allowed")
		return tags
	}
	out := make([]string, 0, len(tags))
	for _, raw := range tags {
		t := strings.ToLower(strings.TrimSpace(raw))
		if len(t) < 2 || len(t) > 20 {
			errs.add("tags", "each tag must be 2-20 characters")
			continue
		}
		out = append(out, t)
	}
	return out
}

func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func parsePage(v url.Values, errs *Errors) int {
	raw := v.Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		errs.add("page", "must be a positive integer")
		return 1
	}
	return page
}

func parsePerPage(v url.Values, max, def int, errs *Errors) int {
	raw := v.Get("perPage")
	if raw == "" {
		return def
	}
	perPage, err := strconv.Atoi(raw)
	if err != nil || perPage < 1 || perPage > max {
		errs.add("perPage", "must be between 1 and "+strconv.Itoa(max))
		return def
	}
	return perPage
}

func parseOptionalMoney(v url.Values, name string, errs *Errors) *float64 {
	raw := v.Get(name)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		errs.add(name, "must be a non-negative number")
		return nil
	}
	return &f
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
