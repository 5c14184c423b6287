package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gigflare/internal/models"
	"gigflare/internal/query"
	"gigflare/internal/ratelimit"
	"gigflare/internal/services"
)

type stubGigStore struct {
	gigs  []models.Gig
	total int
}

func (s *stubGigStore) ListGigs(context.Context, query.Predicate, query.OrderKey, int, int) ([]models.Gig, error) {
	return s.gigs, nil
}

func (s *stubGigStore) CountGigs(context.Context, query.Predicate) (int, error) {
	return s.total, nil
}

func (s *stubGigStore) CreateGig(_ context.Context, gig models.Gig) (models.Gig, error) {
	return gig, nil
}

func (s *stubGigStore) SlugExists(context.Context, string) (bool, error) { return false, nil }

func (s *stubGigStore) CountActiveBySeller(context.Context, string) (int, error) { return 0, nil }

func (s *stubGigStore) GetGigBySlug(context.Context, string) (models.Gig, error) {
	return models.Gig{}, models.ErrGigNotFound
}

func newGigHandler(limit int) *GigHandler {
	store := ratelimit.NewMemoryStore()
	return &GigHandler{
		Service:     &services.GigService{GigRepo: &stubGigStore{gigs: []models.Gig{}, total: 0}},
		ListLimit:   ratelimit.New("gigs:list", limit, time.Minute, store),
		CreateLimit: ratelimit.New("gigs:create", limit, time.Minute, store),
	}
}

func TestListGigsSetsRateHeadersAndEnvelope(t *testing.T) {
	h := newGigHandler(60)

	rr := httptest.NewRecorder()
	h.ListGigs(rr, httptest.NewRequest("GET", "/gigs", nil))

	if rr.Code != 200 {
		t.Fatalf("got status %d, want 200", rr.Code)
	}
	if rr.Header().Get("X-RateLimit") != "60" {
		t.Fatalf("got X-RateLimit %q, want 60", rr.Header().Get("X-RateLimit"))
	}
	if rr.Header().Get("X-RateLimit-Remaining") != "59" {
		t.Fatalf("got remaining %q, want 59", rr.Header().Get("X-RateLimit-Remaining"))
	}
	if rr.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatal("reset header missing")
	}

	var resp struct {
		Items   []models.Gig `json:"items"`
		Total   int          `json:"total"`
		Page    int          `json:"page"`
		PerPage int          `json:"perPage"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Items == nil {
		t.Fatal("items must encode as an array, not null")
	}
	if resp.Page != 1 || resp.PerPage != 12 {
		t.Fatalf("got page %d perPage %d, want defaults", resp.Page, resp.PerPage)
	}
}

func TestListGigsRejectsOverBudgetWith400(t *testing.T) {
	h := newGigHandler(1)

	rr := httptest.NewRecorder()
	h.ListGigs(rr, httptest.NewRequest("GET", "/gigs", nil))
	if rr.Code != 200 {
		t.Fatalf("first call: got %d, want 200", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ListGigs(rr, httptest.NewRequest("GET", "/gigs", nil))
	if rr.Code != 400 {
		t.Fatalf("over budget: got %d, want 400 on the gig list", rr.Code)
	}
	if rr.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Fatal("denied responses still carry the rate headers")
	}
}

func TestListGigsMineRequiresAuth(t *testing.T) {
	h := newGigHandler(60)

	rr := httptest.NewRecorder()
	h.ListGigs(rr, httptest.NewRequest("GET", "/gigs?mine=true", nil))
	if rr.Code != 401 {
		t.Fatalf("got %d, want 401 for anonymous mine=true", rr.Code)
	}
}

func TestCreateGigValidationErrorShape(t *testing.T) {
	h := newGigHandler(60)

	body, _ := json.Marshal(map[string]interface{}{"title": "x", "description": "y", "price": 1})
	req := httptest.NewRequest("POST", "/gigs", bytes.NewReader(body))
	actor := models.Actor{ID: "f1", Role: models.RoleFreelancer, Verified: true}
	req = req.WithContext(WithActor(req.Context(), actor))

	rr := httptest.NewRecorder()
	h.CreateGig(rr, req)

	if rr.Code != 400 {
		t.Fatalf("got %d, want 400", rr.Code)
	}
	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Validation failed" {
		t.Fatalf("got error %q", resp.Error)
	}
	if len(resp.Details) == 0 {
		t.Fatal("expected per-field details")
	}
}

func TestCreateGigRejectsOversizedPayload(t *testing.T) {
	h := newGigHandler(60)

	req := httptest.NewRequest("POST", "/gigs", bytes.NewReader([]byte("{}")))
	req.ContentLength = maxPayloadBytes + 1
	actor := models.Actor{ID: "f1", Role: models.RoleFreelancer, Verified: true}
	req = req.WithContext(WithActor(req.Context(), actor))

	rr := httptest.NewRecorder()
	h.CreateGig(rr, req)
	if rr.Code != 413 {
		t.Fatalf("got %d, want 413", rr.Code)
	}
}

func TestCreateGigRejectsClientsBeforeReadingBody(t *testing.T) {
	h := newGigHandler(60)

	req := httptest.NewRequest("POST", "/gigs", bytes.NewReader([]byte("{")))
	actor := models.Actor{ID: "c1", Role: models.RoleClient, Verified: true}
	req = req.WithContext(WithActor(req.Context(), actor))

	rr := httptest.NewRecorder()
	h.CreateGig(rr, req)
	if rr.Code != 403 {
		t.Fatalf("got %d, want 403", rr.Code)
	}
}
