package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

type ProposalRepository struct {
	DB *sql.DB
}

var proposalColumns = columnMap{
	query.FieldRequestID:    "p.request_id",
	query.FieldFreelancerID: "p.freelancer_id",
	query.FieldCreatedAt:    "p.created_at",
}

const proposalSelect = `
        SELECT p.id, p.request_id, p.freelancer_id, p.cover_letter, p.amount, p.currency,
               p.estimated_days, p.created_at, p.accepted_at,
               u.id, u.username, u.avatar_url
          FROM proposals p
          JOIN users u ON u.id = p.freelancer_id
    `

func (r *ProposalRepository) ListProposals(ctx context.Context, pred query.Predicate, limit, offset int) ([]models.Proposal, error) {
	var args []interface{}
	where, err := renderPredicate(pred, proposalColumns, &args)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("%s WHERE %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		proposalSelect, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	proposals := []models.Proposal{}
	for rows.Next() {
		var p models.Proposal
		err := rows.Scan(
			&p.ID, &p.RequestID, &p.FreelancerID, &p.CoverLetter, &p.Amount, &p.Currency,
			&p.EstimatedDays, &p.CreatedAt, &p.AcceptedAt,
			&p.Freelancer.ID, &p.Freelancer.Username, &p.Freelancer.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

func (r *ProposalRepository) CountProposals(ctx context.Context, pred query.Predicate) (int, error) {
	var args []interface{}
	where, err := renderPredicate(pred, proposalColumns, &args)
	if err != nil {
		return 0, err
	}

	q := fmt.Sprintf("SELECT COUNT(*) FROM proposals p JOIN users u ON u.id = p.freelancer_id WHERE %s", where)

	var total int
	if err := r.DB.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// CreateProposal inserts one proposal. The unique (request_id, freelancer_id)
// index is the authoritative one-proposal-per-pair enforcement: under a race
// the loser's insert fails here and is mapped to ErrAlreadyProposed.
func (r *ProposalRepository) CreateProposal(ctx context.Context, p models.Proposal) (models.Proposal, error) {
	q := `
        INSERT INTO proposals (id, request_id, freelancer_id, cover_letter, amount,
                               currency, estimated_days, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.DB.ExecContext(ctx, q,
		p.ID,
		p.RequestID,
		p.FreelancerID,
		p.CoverLetter,
		p.Amount,
		p.Currency,
		p.EstimatedDays,
		p.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err, "proposals_request_id_freelancer_id_key") {
			return models.Proposal{}, models.ErrAlreadyProposed
		}
		return models.Proposal{}, err
	}
	return p, nil
}

// HasProposal is the validator's pre-check. Best effort only; the unique
// index above is what actually holds under concurrency.
func (r *ProposalRepository) HasProposal(ctx context.Context, requestID, freelancerID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM proposals WHERE request_id = $1 AND freelancer_id = $2)",
		requestID, freelancerID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	return exists, err
}
