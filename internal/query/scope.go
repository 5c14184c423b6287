package query

import "gigflare/internal/models"

// Scope carries the caller identity the compilers narrow visibility by.
// A zero Scope is an anonymous caller.
type Scope struct {
	ActorID       string
	Role          string
	Authenticated bool
}

func (s Scope) IsAdmin() bool {
	return s.Authenticated && s.Role == models.RoleAdmin
}

// ScopeFor builds a Scope from an authenticated actor.
func ScopeFor(actor models.Actor) Scope {
	return Scope{ActorID: actor.ID, Role: actor.Role, Authenticated: true}
}
