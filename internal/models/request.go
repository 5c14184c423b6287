package models

import (
	"time"
)

const (
	RequestStatusOpen      = "OPEN"
	RequestStatusAssigned  = "ASSIGNED"
	RequestStatusClosed    = "CLOSED"
	RequestStatusCancelled = "CANCELLED"
)

type WorkRequest struct {
	ID          string     `json:"id"`
	ClientID    string     `json:"client_id"`
	Client      OwnerInfo  `json:"client"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	BudgetMin   *string    `json:"budget_min,omitempty"`
	BudgetMax   *string    `json:"budget_max,omitempty"`
	Currency    string     `json:"currency"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Tags        []string   `json:"tags"`
	Category    *string    `json:"category,omitempty"`
	Attachments []string   `json:"attachments"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CreateRequestRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	BudgetMin   *float64 `json:"budget_min"`
	BudgetMax   *float64 `json:"budget_max"`
	Currency    string   `json:"currency"`
	Deadline    *time.Time `json:"deadline"`
	Tags        []string `json:"tags"`
	Category    *string  `json:"category"`
	Attachments []string `json:"attachments"`
}

type RequestListQuery struct {
	Q         string
	Tags      []string
	Category  string
	Status    string
	ClientID  string
	BudgetMin *float64
	BudgetMax *float64
	DueAfter  *time.Time
	DueBefore *time.Time
	Sort      string
	Page      int
	PerPage   int
	Mine      bool
}

type RequestListResponse struct {
	Items   []WorkRequest `json:"items"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"perPage"`
}
