package query

import (
	"testing"

	"gigflare/internal/models"
)

func TestCompileRequestListForcesOpenForBrowsers(t *testing.T) {
	q := models.RequestListQuery{Status: models.RequestStatusClosed}
	pred, _ := CompileRequestList(q, Scope{})

	status, ok := findLeaf(pred, OpEq, FieldStatus)
	if !ok {
		t.Fatal("expected a status clause")
	}
	if status.Value != models.RequestStatusOpen {
		t.Fatalf("anonymous browsing must be pinned to OPEN, got %v", status.Value)
	}
}

func TestCompileRequestListForcesOpenForAdminsToo(t *testing.T) {
	q := models.RequestListQuery{Status: models.RequestStatusCancelled}
	scope := Scope{ActorID: "a1", Role: models.RoleAdmin, Authenticated: true}

	pred, _ := CompileRequestList(q, scope)

	status, _ := findLeaf(pred, OpEq, FieldStatus)
	if status.Value != models.RequestStatusOpen {
		t.Fatalf("admins browsing the board still see OPEN only, got %v", status.Value)
	}
}

func TestCompileRequestListMineSeesAllStatuses(t *testing.T) {
	q := models.RequestListQuery{Mine: true}
	scope := Scope{ActorID: "me", Role: models.RoleClient, Authenticated: true}

	pred, _ := CompileRequestList(q, scope)

	if _, ok := findLeaf(pred, OpEq, FieldStatus); ok {
		t.Fatal("owner scope without a status filter must not be pinned to OPEN")
	}
	client, ok := findLeaf(pred, OpEq, FieldClientID)
	if !ok || client.Value != "me" {
		t.Fatalf("expected client clause for the caller, got %v", client.Value)
	}
}

func TestCompileRequestListMineWithStatusFilter(t *testing.T) {
	q := models.RequestListQuery{Mine: true, Status: models.RequestStatusClosed}
	scope := Scope{ActorID: "me", Role: models.RoleClient, Authenticated: true}

	pred, _ := CompileRequestList(q, scope)

	status, ok := findLeaf(pred, OpEq, FieldStatus)
	if !ok || status.Value != models.RequestStatusClosed {
		t.Fatalf("owner-supplied status must apply, got %v", status.Value)
	}
}

func TestCompileRequestListMineOverridesClientFilter(t *testing.T) {
	q := models.RequestListQuery{Mine: true, ClientID: "someone-else"}
	scope := Scope{ActorID: "me", Role: models.RoleClient, Authenticated: true}

	pred, _ := CompileRequestList(q, scope)

	client, _ := findLeaf(pred, OpEq, FieldClientID)
	if client.Value != "me" {
		t.Fatalf("mine must win over clientId, got %v", client.Value)
	}
}

func TestCompileRequestListBudgetAndDeadlineBounds(t *testing.T) {
	min, max := 100.0, 500.0
	q := models.RequestListQuery{BudgetMin: &min, BudgetMax: &max}

	pred, _ := CompileRequestList(q, Scope{})

	lo, ok := findLeaf(pred, OpGTE, FieldBudgetMin)
	if !ok || lo.Value != "100.00" {
		t.Fatalf("got budget lower bound %v, want 100.00", lo.Value)
	}
	hi, ok := findLeaf(pred, OpLTE, FieldBudgetMax)
	if !ok || hi.Value != "500.00" {
		t.Fatalf("got budget upper bound %v, want 500.00", hi.Value)
	}
}
