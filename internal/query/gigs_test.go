package query

import (
	"testing"

	"gigflare/internal/models"
)

func findLeaf(p Predicate, op Op, f Field) (Predicate, bool) {
	if p.Op == op && p.Field == f {
		return p, true
	}
	for _, sub := range p.Subs {
		if found, ok := findLeaf(sub, op, f); ok {
			return found, true
		}
	}
	return Predicate{}, false
}

func TestCompileGigListAlwaysScopesToPublic(t *testing.T) {
	pred, _ := CompileGigList(models.GigListQuery{}, Scope{})

	active, ok := findLeaf(pred, OpEq, FieldGigActive)
	if !ok || active.Value != true {
		t.Fatal("expected unconditional is_active = true clause")
	}
	banned, ok := findLeaf(pred, OpEq, FieldOwnerBanned)
	if !ok || banned.Value != false {
		t.Fatal("expected unconditional owner_banned = false clause")
	}
}

func TestCompileGigListMineOverridesSellerFilter(t *testing.T) {
	q := models.GigListQuery{SellerID: "someone-else", Mine: true}
	scope := Scope{ActorID: "me", Role: models.RoleFreelancer, Authenticated: true}

	pred, _ := CompileGigList(q, scope)

	seller, ok := findLeaf(pred, OpEq, FieldSellerID)
	if !ok {
		t.Fatal("expected a seller clause")
	}
	if seller.Value != "me" {
		t.Fatalf("mine must win over sellerId: got %v", seller.Value)
	}
}

func TestCompileGigListMineIgnoredWhenAnonymous(t *testing.T) {
	q := models.GigListQuery{SellerID: "other", Mine: true}

	pred, _ := CompileGigList(q, Scope{})

	seller, ok := findLeaf(pred, OpEq, FieldSellerID)
	if !ok {
		t.Fatal("expected a seller clause")
	}
	if seller.Value != "other" {
		t.Fatalf("got seller %v, want the supplied filter", seller.Value)
	}
}

func TestCompileGigListKeywordExpandsToDisjunction(t *testing.T) {
	pred, _ := CompileGigList(models.GigListQuery{Q: "Logo"}, Scope{})

	title, ok := findLeaf(pred, OpContainsFold, FieldTitle)
	if !ok || title.Value != "Logo" {
		t.Fatal("expected case-insensitive title clause")
	}
	if _, ok := findLeaf(pred, OpContainsFold, FieldDescription); !ok {
		t.Fatal("expected description clause")
	}
	tag, ok := findLeaf(pred, OpHasTag, FieldTags)
	if !ok {
		t.Fatal("expected tag membership clause")
	}
	if tag.Value != "logo" {
		t.Fatalf("keyword tag probe must be lowercased, got %v", tag.Value)
	}
}

func TestCompileGigListTagsAreConjoined(t *testing.T) {
	pred, _ := CompileGigList(models.GigListQuery{Tags: []string{"design", "logo"}}, Scope{})

	if pred.Op != OpAnd {
		t.Fatal("expected top-level conjunction")
	}
	var tagClauses int
	for _, sub := range pred.Subs {
		if sub.Op == OpHasTag {
			tagClauses++
		}
	}
	if tagClauses != 2 {
		t.Fatalf("got %d tag clauses, want 2", tagClauses)
	}
}

func TestCompileGigListPriceBoundsAsMoneyStrings(t *testing.T) {
	min, max := 10.0, 99.5
	pred, _ := CompileGigList(models.GigListQuery{PriceMin: &min, PriceMax: &max}, Scope{})

	lo, ok := findLeaf(pred, OpGTE, FieldPrice)
	if !ok || lo.Value != "10.00" {
		t.Fatalf("got lower bound %v, want 10.00", lo.Value)
	}
	hi, ok := findLeaf(pred, OpLTE, FieldPrice)
	if !ok || hi.Value != "99.50" {
		t.Fatalf("got upper bound %v, want 99.50", hi.Value)
	}
}

func TestGigOrderDefaultsToNewest(t *testing.T) {
	if _, order := CompileGigList(models.GigListQuery{Sort: "bogus"}, Scope{}); order != OrderNewest {
		t.Fatalf("got order %v, want newest", order)
	}
	if _, order := CompileGigList(models.GigListQuery{Sort: "price_asc"}, Scope{}); order != OrderPriceAsc {
		t.Fatalf("got order %v, want price ascending", order)
	}
}
