package services

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

type ProposalStore interface {
	ListProposals(ctx context.Context, pred query.Predicate, limit, offset int) ([]models.Proposal, error)
	CountProposals(ctx context.Context, pred query.Predicate) (int, error)
	CreateProposal(ctx context.Context, p models.Proposal) (models.Proposal, error)
	HasProposal(ctx context.Context, requestID, freelancerID string) (bool, error)
}

// RequestGetter is the slice of the request store the proposal paths need.
type RequestGetter interface {
	GetRequestByID(ctx context.Context, id string) (models.WorkRequest, error)
}

type ProposalService struct {
	ProposalRepo ProposalStore
	RequestRepo  RequestGetter
}

func (s *ProposalService) ListProposals(ctx context.Context, q models.ProposalListQuery, actor models.Actor) (models.ProposalListResponse, error) {
	req, err := s.RequestRepo.GetRequestByID(ctx, q.RequestID)
	if err != nil {
		return models.ProposalListResponse{}, err
	}

	pred, _ := query.CompileProposalList(q.RequestID, req.ClientID, query.ScopeFor(actor))
	offset := (q.Page - 1) * q.PerPage

	countErr := make(chan error, 1)
	var total int
	go func() {
		t, err := s.ProposalRepo.CountProposals(ctx, pred)
		total = t
		countErr <- err
	}()

	items, err := s.ProposalRepo.ListProposals(ctx, pred, q.PerPage, offset)
	if cerr := <-countErr; err == nil {
		err = cerr
	}
	if err != nil {
		return models.ProposalListResponse{}, err
	}

	return models.ProposalListResponse{
		Items:   items,
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

func (s *ProposalService) CreateProposal(ctx context.Context, actor models.Actor, dto models.CreateProposalRequest) (models.Proposal, error) {
	if actor.Role != models.RoleFreelancer {
		return models.Proposal{}, models.ErrForbidden
	}

	req, err := s.RequestRepo.GetRequestByID(ctx, dto.RequestID)
	if err != nil {
		return models.Proposal{}, err
	}
	if req.Status != models.RequestStatusOpen {
		return models.Proposal{}, models.ErrRequestNotOpen
	}
	if req.ClientID == actor.ID {
		return models.Proposal{}, models.ErrSelfProposal
	}

	if req.BudgetMin != nil && req.BudgetMax != nil {
		min, errMin := strconv.ParseFloat(*req.BudgetMin, 64)
		max, errMax := strconv.ParseFloat(*req.BudgetMax, 64)
		if errMin == nil && errMax == nil && (dto.Amount < min || dto.Amount > max) {
			return models.Proposal{}, &models.BudgetRangeError{
				Min: models.MoneyString(min),
				Max: models.MoneyString(max),
			}
		}
	}

	// Pre-check only: the unique (request, freelancer) index is what holds
	// under concurrent submissions.
	taken, err := s.ProposalRepo.HasProposal(ctx, dto.RequestID, actor.ID)
	if err != nil {
		return models.Proposal{}, err
	}
	if taken {
		return models.Proposal{}, models.ErrAlreadyProposed
	}

	currency := dto.Currency
	if currency == "" {
		currency = req.Currency
	}
	if currency == "" {
		currency = "INR"
	}

	proposal := models.Proposal{
		ID:            uuid.NewString(),
		RequestID:     dto.RequestID,
		FreelancerID:  actor.ID,
		CoverLetter:   dto.CoverLetter,
		Amount:        models.MoneyString(dto.Amount),
		Currency:      currency,
		EstimatedDays: dto.EstimatedDays,
		CreatedAt:     time.Now().UTC(),
	}

	return s.ProposalRepo.CreateProposal(ctx, proposal)
}
