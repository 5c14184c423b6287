package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

// maxOpenRequestsUnverified caps open requests for unverified clients.
// Best-effort count-then-create, same tradeoff as the gig quota.
const maxOpenRequestsUnverified = 10

type RequestStore interface {
	ListRequests(ctx context.Context, pred query.Predicate, order query.OrderKey, limit, offset int) ([]models.WorkRequest, error)
	CountRequests(ctx context.Context, pred query.Predicate) (int, error)
	CreateRequest(ctx context.Context, req models.WorkRequest) (models.WorkRequest, error)
	GetRequestByID(ctx context.Context, id string) (models.WorkRequest, error)
	CountOpenByClient(ctx context.Context, clientID string) (int, error)
}

type RequestService struct {
	RequestRepo RequestStore
}

func (s *RequestService) ListRequests(ctx context.Context, q models.RequestListQuery, scope query.Scope) (models.RequestListResponse, error) {
	pred, order := query.CompileRequestList(q, scope)
	offset := (q.Page - 1) * q.PerPage

	countErr := make(chan error, 1)
	var total int
	go func() {
		t, err := s.RequestRepo.CountRequests(ctx, pred)
		total = t
		countErr <- err
	}()

	items, err := s.RequestRepo.ListRequests(ctx, pred, order, q.PerPage, offset)
	if cerr := <-countErr; err == nil {
		err = cerr
	}
	if err != nil {
		return models.RequestListResponse{}, err
	}

	return models.RequestListResponse{
		Items:   items,
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

func (s *RequestService) CreateRequest(ctx context.Context, actor models.Actor, dto models.CreateRequestRequest) (models.WorkRequest, error) {
	if !actor.CanPost() {
		return models.WorkRequest{}, models.ErrForbidden
	}

	if !actor.Verified {
		open, err := s.RequestRepo.CountOpenByClient(ctx, actor.ID)
		if err != nil {
			return models.WorkRequest{}, err
		}
		if open >= maxOpenRequestsUnverified {
			return models.WorkRequest{}, &models.QuotaError{Resource: "open requests", Limit: maxOpenRequestsUnverified}
		}
	}

	req := models.WorkRequest{
		ID:          uuid.NewString(),
		ClientID:    actor.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Currency:    dto.Currency,
		Deadline:    dto.Deadline,
		Tags:        dto.Tags,
		Category:    dto.Category,
		Attachments: dto.Attachments,
		Status:      models.RequestStatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if dto.BudgetMin != nil {
		v := models.MoneyString(*dto.BudgetMin)
		req.BudgetMin = &v
	}
	if dto.BudgetMax != nil {
		v := models.MoneyString(*dto.BudgetMax)
		req.BudgetMax = &v
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	if req.Attachments == nil {
		req.Attachments = []string{}
	}

	return s.RequestRepo.CreateRequest(ctx, req)
}

func (s *RequestService) GetRequestByID(ctx context.Context, id string) (models.WorkRequest, error) {
	return s.RequestRepo.GetRequestByID(ctx, id)
}
