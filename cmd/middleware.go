package main

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"gigflare/internal/handlers"
	"gigflare/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, fmt.Sprintf("%s\n%s", err.Error(), debug.Stack()))
	http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
}

// authenticate resolves the caller from the Authorization header, refreshing
// the access token via the Refresh-Token header when it has expired. Returns
// the live actor loaded from the database so bans take effect immediately.
func (app *application) authenticate(w http.ResponseWriter, r *http.Request) (models.Actor, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return models.Actor{}, errors.New("authorization header missing or invalid")
	}
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := app.userService.Tokens.ParseAccessToken(accessToken)
	if err != nil {
		refreshToken := r.Header.Get("Refresh-Token")
		if refreshToken == "" {
			return models.Actor{}, errors.New("invalid access token")
		}
		newAccess, refreshed, err := app.userService.Refresh(r.Context(), refreshToken)
		if err != nil {
			return models.Actor{}, errors.New("invalid refresh token")
		}
		w.Header().Set("Authorization", "Bearer "+newAccess)
		claims = refreshed
	}

	actor, err := app.userService.GetActorByID(r.Context(), claims.UserID)
	if err != nil {
		return models.Actor{}, errors.New("unknown user")
	}
	return actor, nil
}

func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := app.authenticate(w, r)
		if err != nil {
			http.Error(w, `{"error":"Authentication required"}`, http.StatusUnauthorized)
			return
		}
		if actor.Banned {
			http.Error(w, `{"error":"Account suspended"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r.WithContext(handlers.WithActor(r.Context(), actor)))
	})
}

// optionalAuth attaches the actor when valid credentials are presented and
// otherwise lets the request through anonymously. Banned accounts are
// treated as anonymous here rather than rejected.
func (app *application) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := app.authenticate(w, r)
		if err != nil || actor.Banned {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(handlers.WithActor(r.Context(), actor)))
	})
}
