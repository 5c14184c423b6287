package models

import (
	"time"
)

type Proposal struct {
	ID            string     `json:"id"`
	RequestID     string     `json:"request_id"`
	FreelancerID  string     `json:"freelancer_id"`
	Freelancer    OwnerInfo  `json:"freelancer"`
	CoverLetter   string     `json:"cover_letter"`
	Amount        string     `json:"amount"`
	Currency      string     `json:"currency"`
	EstimatedDays int        `json:"estimated_days"`
	CreatedAt     time.Time  `json:"created_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
}

type CreateProposalRequest struct {
	RequestID     string  `json:"request_id"`
	CoverLetter   string  `json:"cover_letter"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	EstimatedDays int     `json:"estimated_days"`
}

type ProposalListQuery struct {
	RequestID string
	Page      int
	PerPage   int
}

type ProposalListResponse struct {
	Items   []Proposal `json:"items"`
	Total   int        `json:"total"`
	Page    int        `json:"page"`
	PerPage int        `json:"perPage"`
}
