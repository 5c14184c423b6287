package query

import (
	"testing"

	"gigflare/internal/models"
)

func TestCompileProposalListPinsStrangersToOwnRows(t *testing.T) {
	scope := Scope{ActorID: "f1", Role: models.RoleFreelancer, Authenticated: true}

	pred, _ := CompileProposalList("req-1", "owner-1", scope)

	req, ok := findLeaf(pred, OpEq, FieldRequestID)
	if !ok || req.Value != "req-1" {
		t.Fatal("expected request clause")
	}
	freelancer, ok := findLeaf(pred, OpEq, FieldFreelancerID)
	if !ok || freelancer.Value != "f1" {
		t.Fatalf("stranger must only see own proposals, got %v", freelancer.Value)
	}
}

func TestCompileProposalListOwnerSeesAll(t *testing.T) {
	scope := Scope{ActorID: "owner-1", Role: models.RoleClient, Authenticated: true}

	pred, _ := CompileProposalList("req-1", "owner-1", scope)

	if _, ok := findLeaf(pred, OpEq, FieldFreelancerID); ok {
		t.Fatal("request owner must not be pinned to a freelancer")
	}
}

func TestCompileProposalListAdminSeesAll(t *testing.T) {
	scope := Scope{ActorID: "a1", Role: models.RoleAdmin, Authenticated: true}

	pred, _ := CompileProposalList("req-1", "owner-1", scope)

	if _, ok := findLeaf(pred, OpEq, FieldFreelancerID); ok {
		t.Fatal("admins must not be pinned to a freelancer")
	}
}
