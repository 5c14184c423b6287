package repositories

import (
	"testing"

	"gigflare/internal/query"
)

var testColumns = columnMap{
	query.FieldTitle:  "g.title",
	query.FieldTags:   "g.tags",
	query.FieldPrice:  "g.price",
	query.FieldStatus: "g.status",
}

func TestRenderPredicateLeafOps(t *testing.T) {
	cases := []struct {
		pred query.Predicate
		want string
	}{
		{query.Eq(query.FieldStatus, "OPEN"), "g.status = $1"},
		{query.GTE(query.FieldPrice, "10.00"), "g.price >= $1"},
		{query.LTE(query.FieldPrice, "99.00"), "g.price <= $1"},
		{query.ContainsFold(query.FieldTitle, "logo"), "g.title ILIKE '%' || $1 || '%'"},
		{query.HasTag(query.FieldTags, "design"), "g.tags ? $1"},
	}

	for _, c := range cases {
		var args []interface{}
		got, err := renderPredicate(c.pred, testColumns, &args)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
		if len(args) != 1 {
			t.Fatalf("got %d args, want 1", len(args))
		}
	}
}

func TestRenderPredicateNestedTree(t *testing.T) {
	pred := query.And(
		query.Eq(query.FieldStatus, "OPEN"),
		query.Or(
			query.ContainsFold(query.FieldTitle, "logo"),
			query.HasTag(query.FieldTags, "logo"),
		),
	)

	var args []interface{}
	got, err := renderPredicate(pred, testColumns, &args)
	if err != nil {
		t.Fatal(err)
	}
	want := "(g.status = $1 AND (g.title ILIKE '%' || $2 || '%' OR g.tags ? $3))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if len(args) != 3 {
		t.Fatalf("got %d args, want 3", len(args))
	}
	if args[0] != "OPEN" || args[1] != "logo" || args[2] != "logo" {
		t.Fatalf("args out of order: %v", args)
	}
}

func TestRenderPredicateEmptyConjunction(t *testing.T) {
	var args []interface{}
	got, err := renderPredicate(query.And(), testColumns, &args)
	if err != nil {
		t.Fatal(err)
	}
	if got != "TRUE" {
		t.Fatalf("got %q, want TRUE", got)
	}
	if len(args) != 0 {
		t.Fatalf("empty conjunction must bind nothing, got %v", args)
	}
}

func TestRenderPredicateSingleChildUnwrapped(t *testing.T) {
	var args []interface{}
	got, err := renderPredicate(query.And(query.Eq(query.FieldStatus, "OPEN")), testColumns, &args)
	if err != nil {
		t.Fatal(err)
	}
	if got != "g.status = $1" {
		t.Fatalf("got %q, single child should not be parenthesized", got)
	}
}

func TestRenderPredicateUnknownField(t *testing.T) {
	var args []interface{}
	if _, err := renderPredicate(query.Eq(query.FieldDeadline, "x"), testColumns, &args); err == nil {
		t.Fatal("unmapped field must be rejected")
	}
}

func TestJSONStringsNormalizesNil(t *testing.T) {
	raw, err := jsonStrings(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Fatalf("got %q, want []", raw)
	}

	out, err := scanJSONStrings(nil)
	if err != nil {
		t.Fatal(err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("got %v, want empty slice", out)
	}
}
