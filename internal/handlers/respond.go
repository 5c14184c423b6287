package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"

	"gigflare/internal/models"
	"gigflare/internal/ratelimit"
	"gigflare/internal/validation"
)

// maxPayloadBytes bounds write-path request bodies; anything larger is
// rejected with 413 before validation runs.
const maxPayloadBytes = 1_000_000

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor attaches the authenticated actor to the request context. Set by
// the auth middleware, read by the handlers.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func ActorFrom(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(models.Actor)
	return actor, ok
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

type errorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, message string, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Details: errs})
}

// setRateHeaders stamps the limiter metadata on the response. Every path
// that consulted the limiter carries these, success or failure, so clients
// can observe their remaining budget.
func setRateHeaders(w http.ResponseWriter, res ratelimit.Result) {
	w.Header().Set("X-RateLimit", strconv.Itoa(res.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
}

// checkLimit gates a request on the given limiter. Store failures fail open
// and are logged, never swallowed.
func checkLimit(w http.ResponseWriter, r *http.Request, l *ratelimit.Limiter, subject string) ratelimit.Result {
	res, err := l.Check(r.Context(), subject)
	if err != nil {
		log.Printf("rate limit store unavailable: %v", err)
	}
	setRateHeaders(w, res)
	return res
}

// clientIP resolves the caller address for anonymous rate-limit keys:
// first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// readBody decodes a JSON payload with the size guard applied. Writes the
// error response itself and reports whether decoding succeeded.
func readBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if r.ContentLength > maxPayloadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "Payload too large")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Payload too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Anything
// unclassified is logged and returned opaque.
func writeServiceError(w http.ResponseWriter, err error) {
	var quotaErr *models.QuotaError
	var rangeErr *models.BudgetRangeError

	switch {
	case errors.As(err, &quotaErr):
		writeError(w, http.StatusForbidden, quotaErr.Error())
	case errors.As(err, &rangeErr):
		writeError(w, http.StatusBadRequest, rangeErr.Error())
	case errors.Is(err, models.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, models.ErrSelfProposal):
		writeError(w, http.StatusForbidden, "You cannot propose on your own request")
	case errors.Is(err, models.ErrRequestNotFound):
		writeError(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, models.ErrGigNotFound):
		writeError(w, http.StatusNotFound, "Gig not found")
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrRequestNotOpen):
		writeError(w, http.StatusConflict, "Request is not open for proposals")
	case errors.Is(err, models.ErrAlreadyProposed):
		writeError(w, http.StatusConflict, "You already proposed on this request")
	case errors.Is(err, models.ErrSlugTaken):
		writeError(w, http.StatusConflict, "Slug already exists, choose a different title")
	case errors.Is(err, models.ErrSlugExhausted):
		writeError(w, http.StatusServiceUnavailable, "Could not allocate a unique slug, try a different title")
	case errors.Is(err, models.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, models.ErrDuplicateUsername):
		writeError(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
