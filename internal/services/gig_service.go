package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gigflare/internal/models"
	"gigflare/internal/query"
)

// maxActiveGigsUnverified caps concurrently active listings for sellers
// without identity verification. The count is a best-effort live query, not
// a transactional guarantee; concurrent bursts may overshoot slightly.
const maxActiveGigsUnverified = 5

type GigStore interface {
	ListGigs(ctx context.Context, pred query.Predicate, order query.OrderKey, limit, offset int) ([]models.Gig, error)
	CountGigs(ctx context.Context, pred query.Predicate) (int, error)
	CreateGig(ctx context.Context, gig models.Gig) (models.Gig, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	CountActiveBySeller(ctx context.Context, sellerID string) (int, error)
	GetGigBySlug(ctx context.Context, slug string) (models.Gig, error)
}

type GigService struct {
	GigRepo GigStore
}

func (s *GigService) ListGigs(ctx context.Context, q models.GigListQuery, scope query.Scope) (models.GigListResponse, error) {
	pred, order := query.CompileGigList(q, scope)
	offset := (q.Page - 1) * q.PerPage

	countErr := make(chan error, 1)
	var total int
	go func() {
		t, err := s.GigRepo.CountGigs(ctx, pred)
		total = t
		countErr <- err
	}()

	items, err := s.GigRepo.ListGigs(ctx, pred, order, q.PerPage, offset)
	if cerr := <-countErr; err == nil {
		err = cerr
	}
	if err != nil {
		return models.GigListResponse{}, err
	}

	return models.GigListResponse{
		Items:   items,
		Total:   total,
		Page:    q.Page,
		PerPage: q.PerPage,
	}, nil
}

func (s *GigService) CreateGig(ctx context.Context, actor models.Actor, dto models.CreateGigRequest) (models.Gig, error) {
	if !actor.CanSell() {
		return models.Gig{}, models.ErrForbidden
	}

	if !actor.Verified {
		active, err := s.GigRepo.CountActiveBySeller(ctx, actor.ID)
		if err != nil {
			return models.Gig{}, err
		}
		if active >= maxActiveGigsUnverified {
			return models.Gig{}, &models.QuotaError{Resource: "active gigs", Limit: maxActiveGigsUnverified}
		}
	}

	slug, err := AllocateSlug(ctx, s.GigRepo, dto.Title)
	if err != nil {
		return models.Gig{}, err
	}

	gig := models.Gig{
		ID:           uuid.NewString(),
		SellerID:     actor.ID,
		Title:        dto.Title,
		Slug:         slug,
		Description:  dto.Description,
		Price:        models.MoneyString(dto.Price),
		Currency:     dto.Currency,
		DeliveryDays: *dto.DeliveryDays,
		Images:       dto.Images,
		ThumbnailURL: dto.ThumbnailURL,
		Tags:         dto.Tags,
		Category:     dto.Category,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if gig.Tags == nil {
		gig.Tags = []string{}
	}
	if gig.Images == nil {
		gig.Images = []string{}
	}

	// A concurrent creation may have taken the slug between the probe and
	// this insert; ErrSlugTaken from the store is the expected signal.
	return s.GigRepo.CreateGig(ctx, gig)
}

func (s *GigService) GetGigBySlug(ctx context.Context, slug string) (models.Gig, error) {
	return s.GigRepo.GetGigBySlug(ctx, slug)
}
