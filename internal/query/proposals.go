package query

// CompileProposalList scopes the proposals of one request. The request owner
// and admins see every proposal; any other caller is pinned to their own.
func CompileProposalList(requestID, requestOwnerID string, scope Scope) (Predicate, OrderKey) {
	conj := []Predicate{Eq(FieldRequestID, requestID)}

	if !scope.IsAdmin() && scope.ActorID != requestOwnerID {
		conj = append(conj, Eq(FieldFreelancerID, scope.ActorID))
	}

	return And(conj...), OrderNewest
}
