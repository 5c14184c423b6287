package query

import (
	"strings"

	"gigflare/internal/models"
)

// CompileGigList turns a validated gig listing query into a predicate tree
// and ordering. The public safety clause (active listing, owner not banned)
// is unconditional and cannot be overridden by query input. When the caller
// asked for "mine", their own id replaces any supplied seller filter.
func CompileGigList(q models.GigListQuery, scope Scope) (Predicate, OrderKey) {
	conj := []Predicate{
		Eq(FieldGigActive, true),
		Eq(FieldOwnerBanned, false),
	}

	sellerScope := q.SellerID
	if q.Mine && scope.Authenticated {
		sellerScope = scope.ActorID
	}

	if q.Q != "" {
		conj = append(conj, keywordClause(q.Q))
	}
	if q.Category != "" {
		conj = append(conj, Eq(FieldCategory, q.Category))
	}
	if sellerScope != "" {
		conj = append(conj, Eq(FieldSellerID, sellerScope))
	}
	for _, tag := range q.Tags {
		conj = append(conj, HasTag(FieldTags, tag))
	}
	if q.PriceMin != nil {
		conj = append(conj, GTE(FieldPrice, models.MoneyString(*q.PriceMin)))
	}
	if q.PriceMax != nil {
		conj = append(conj, LTE(FieldPrice, models.MoneyString(*q.PriceMax)))
	}

	return And(conj...), gigOrder(q.Sort)
}

// keywordClause expands a free-text keyword into a disjunction over title,
// description and exact tag membership on the lowercased keyword.
func keywordClause(kw string) Predicate {
	return Or(
		ContainsFold(FieldTitle, kw),
		ContainsFold(FieldDescription, kw),
		HasTag(FieldTags, strings.ToLower(kw)),
	)
}
