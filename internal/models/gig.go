package models

import (
	"time"
)

type Gig struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	Seller       OwnerInfo `json:"seller"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Currency     string    `json:"currency"`
	DeliveryDays int       `json:"delivery_days"`
	Revisions    int       `json:"revisions"`
	Images       []string  `json:"images"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Tags         []string  `json:"tags"`
	Category     *string   `json:"category,omitempty"`
	IsActive     bool      `json:"is_active"`
	RatingAvg    float64   `json:"rating_avg"`
	RatingCount  int       `json:"rating_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateGigRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	DeliveryDays *int     `json:"delivery_days"`
	Tags         []string `json:"tags"`
	Category     *string  `json:"category"`
	Images       []string `json:"images"`
	ThumbnailURL *string  `json:"thumbnail_url"`
}

// GigListQuery is the normalized, type-checked parameter set for GET /gigs.
// Absent numeric bounds stay nil so the compiled predicate omits the clause
// instead of fabricating a zero bound.
type GigListQuery struct {
	Q        string
	Tags     []string
	Category string
	SellerID string
	PriceMin *float64
	PriceMax *float64
	Sort     string
	Page     int
	PerPage  int
	Mine     bool
}

type GigListResponse struct {
	Items   []Gig `json:"items"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
}
