package validation

import (
	"net/url"
	"strings"

	"gigflare/internal/models"
)

// ParseGigListQuery validates GET /gigs parameters.
func ParseGigListQuery(v url.Values) (models.GigListQuery, Errors) {
	var errs Errors
	q := models.GigListQuery{
		Q:        strings.TrimSpace(v.Get("q")),
		Tags:     parseTagsCSV(v.Get("tags")),
		Category: strings.TrimSpace(v.Get("category")),
		SellerID: strings.TrimSpace(v.Get("sellerId")),
		Sort:     v.Get("sort"),
		Mine:     v.Get("mine") == "true",
	}

	if len(q.Q) > 120 {
		errs.add("q", "must be at most 120 characters")
	}
	if len(q.Category) > 50 {
		errs.add("category", "must be at most 50 characters")
	}
	if m := v.Get("mine"); m != "" && !oneOf(m, "true", "false") {
		errs.add("mine", "must be true or false")
	}
	if q.Sort != "" && !oneOf(q.Sort, "new", "price_asc", "price_desc", "rating") {
		errs.add("sort", "must be one of new, price_asc, price_desc, rating")
	}

	q.PriceMin = parseOptionalMoney(v, "priceMin", &errs)
	q.PriceMax = parseOptionalMoney(v, "priceMax", &errs)
	q.Page = parsePage(v, &errs)
	q.PerPage = parsePerPage(v, 50, 12, &errs)

	if len(errs) > 0 {
		return models.GigListQuery{}, errs
	}
	return q, nil
}

// ValidateCreateGig checks and normalizes a gig creation payload in place.
func ValidateCreateGig(dto *models.CreateGigRequest) Errors {
	var errs Errors

	dto.Title = strings.TrimSpace(dto.Title)
	if len(dto.Title) < 10 || len(dto.Title) > 120 {
		errs.add("title", "must be 10-120 characters")
	}
	dto.Description = strings.TrimSpace(dto.Description)
	if len(dto.Description) < 30 || len(dto.Description) > 5000 {
		errs.add("description", "must be 30-5000 characters")
	}
	if dto.Price < 5 || dto.Price > 1_000_000 {
		errs.add("price", "must be between 5 and 1000000")
	}
	if dto.Currency == "" {
		dto.Currency = "INR"
	} else if !oneOf(dto.Currency, "INR", "USD") {
		errs.add("currency", "must be INR or USD")
	}
	if dto.DeliveryDays == nil {
		one := 1
		dto.DeliveryDays = &one
	} else if *dto.DeliveryDays < 0 || *dto.DeliveryDays > 15 {
		errs.add("delivery_days", "must be between 0 and 15")
	}
	dto.Tags = normalizeTags(dto.Tags, &errs)
	if dto.Category != nil {
		c := strings.TrimSpace(*dto.Category)
		dto.Category = &c
		if len(c) < 2 || len(c) > 50 {
			errs.add("category", "must be 2-50 characters")
		}
	}
	if len(dto.Images) > maxImages {
		errs.add("images", "at most 10 images allowed")
	}
	for _, img := range dto.Images {
		if !validURL(img) {
			errs.add("images", "each image must be a valid URL")
			break
		}
	}
	if dto.ThumbnailURL != nil && !validURL(*dto.ThumbnailURL) {
		errs.add("thumbnail_url", "must be a valid URL")
	}

	return errs
}
