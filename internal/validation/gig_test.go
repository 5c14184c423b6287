package validation

import (
	"net/url"
	"testing"

	"gigflare/internal/models"
)

func hasFieldError(errs Errors, field string) bool {
	for _, fe := range errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func TestParseGigListQueryDefaults(t *testing.T) {
	q, errs := ParseGigListQuery(url.Values{})
	if errs != nil {
		t.Fatalf("empty query must be valid, got %v", errs)
	}
	if q.Page != 1 || q.PerPage != 12 {
		t.Fatalf("got page %d perPage %d, want 1 and 12", q.Page, q.PerPage)
	}
	if q.Mine {
		t.Fatal("mine must default to false")
	}
}

func TestParseGigListQueryTagsNormalized(t *testing.T) {
	v := url.Values{"tags": {" Logo , DESIGN ,x"}}
	q, errs := ParseGigListQuery(v)
	if errs != nil {
		t.Fatal(errs)
	}
	if len(q.Tags) != 2 || q.Tags[0] != "logo" || q.Tags[1] != "design" {
		t.Fatalf("got tags %v, want lowercased with the short one dropped", q.Tags)
	}
}

func TestParseGigListQueryRejectsBadValues(t *testing.T) {
	v := url.Values{
		"sort":     {"upside_down"},
		"priceMin": {"-5"},
		"page":     {"0"},
		"perPage":  {"500"},
	}
	_, errs := ParseGigListQuery(v)
	for _, field := range []string{"sort", "priceMin", "page", "perPage"} {
		if !hasFieldError(errs, field) {
			t.Fatalf("expected an error for %s, got %v", field, errs)
		}
	}
}

func TestValidateCreateGigBounds(t *testing.T) {
	days := 20
	dto := models.CreateGigRequest{
		Title:        "short",
		Description:  "too short",
		Price:        2,
		Currency:     "EUR",
		DeliveryDays: &days,
	}
	errs := ValidateCreateGig(&dto)
	for _, field := range []string{"title", "description", "price", "currency", "delivery_days"} {
		if !hasFieldError(errs, field) {
			t.Fatalf("expected an error for %s, got %v", field, errs)
		}
	}
}

func TestValidateCreateGigAppliesDefaults(t *testing.T) {
	dto := models.CreateGigRequest{
		Title:       "Professional Logo Design",
		Description: "I will design a memorable logo for your brand in three days.",
		Price:       50,
		Tags:        []string{" Logo ", "BRANDING"},
	}
	if errs := ValidateCreateGig(&dto); errs != nil {
		t.Fatal(errs)
	}
	if dto.Currency != "INR" {
		t.Fatalf("got currency %q, want the INR default", dto.Currency)
	}
	if dto.DeliveryDays == nil || *dto.DeliveryDays != 1 {
		t.Fatal("delivery days must default to 1")
	}
	if dto.Tags[0] != "logo" || dto.Tags[1] != "branding" {
		t.Fatalf("tags must be normalized, got %v", dto.Tags)
	}
}

func TestValidateCreateGigRejectsBadImageURL(t *testing.T) {
	dto := models.CreateGigRequest{
		Title:       "Professional Logo Design",
		Description: "I will design a memorable logo for your brand in three days.",
		Price:       50,
		Images:      []string{"ftp://example.com/a.png"},
	}
	errs := ValidateCreateGig(&dto)
	if !hasFieldError(errs, "images") {
		t.Fatalf("expected an images error, got %v", errs)
	}
}
