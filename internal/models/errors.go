package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrRequestNotFound    = errors.New("models: request not found")
	ErrGigNotFound        = errors.New("models: gig not found")

	ErrForbidden       = errors.New("models: forbidden")
	ErrRequestNotOpen  = errors.New("models: request is not open for proposals")
	ErrSelfProposal    = errors.New("models: cannot propose on own request")
	ErrAlreadyProposed = errors.New("models: already proposed on this request")
	ErrSlugTaken       = errors.New("models: slug already exists")
	ErrSlugExhausted   = errors.New("models: slug allocation attempts exhausted")
)

// QuotaError is returned when an unverified account hits a creation ceiling.
// The limit is echoed back so the client can self-correct.
type QuotaError struct {
	Resource string
	Limit    int
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("unverified accounts are limited to %d %s", e.Limit, e.Resource)
}

// BudgetRangeError reports a proposal amount outside the request's budget
// range, with the formatted bounds embedded in the message.
type BudgetRangeError struct {
	Min string
	Max string
}

func (e *BudgetRangeError) Error() string {
	return fmt.Sprintf("amount must be within the request budget range %s - %s", e.Min, e.Max)
}
