package query

import (
	"gigflare/internal/models"
)

// CompileRequestList builds the work-request listing predicate. Anyone who
// is neither scoped to "mine" nor filtering on a specific client only ever
// sees OPEN requests; the owner scope sees all statuses unless they narrow
// by status themselves. The forced-OPEN clause applies to admins too.
func CompileRequestList(q models.RequestListQuery, scope Scope) (Predicate, OrderKey) {
	var conj []Predicate

	clientScope := q.ClientID
	isMine := false
	if q.Mine && scope.Authenticated {
		clientScope = scope.ActorID
		isMine = true
	}

	if q.Q != "" {
		conj = append(conj, keywordClause(q.Q))
	}
	if q.Category != "" {
		conj = append(conj, Eq(FieldCategory, q.Category))
	}
	if clientScope != "" {
		conj = append(conj, Eq(FieldClientID, clientScope))
	}

	if !isMine && q.ClientID == "" {
		conj = append(conj, Eq(FieldStatus, models.RequestStatusOpen))
	} else if q.Status != "" {
		conj = append(conj, Eq(FieldStatus, q.Status))
	}

	for _, tag := range q.Tags {
		conj = append(conj, HasTag(FieldTags, tag))
	}
	if q.BudgetMin != nil {
		conj = append(conj, GTE(FieldBudgetMin, models.MoneyString(*q.BudgetMin)))
	}
	if q.BudgetMax != nil {
		conj = append(conj, LTE(FieldBudgetMax, models.MoneyString(*q.BudgetMax)))
	}
	if q.DueAfter != nil {
		conj = append(conj, GTE(FieldDeadline, *q.DueAfter))
	}
	if q.DueBefore != nil {
		conj = append(conj, LTE(FieldDeadline, *q.DueBefore))
	}

	return And(conj...), requestOrder(q.Sort)
}
