package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	optionalAuthMiddleware := standardMiddleware.Append(app.optionalAuth)
	authMiddleware := standardMiddleware.Append(app.requireAuth)

	mux := pat.New()

	mux.Get("/health", standardMiddleware.ThenFunc(app.healthHandler.Health))

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))

	// Gigs
	mux.Get("/gigs", optionalAuthMiddleware.ThenFunc(app.gigHandler.ListGigs))
	mux.Post("/gigs", authMiddleware.ThenFunc(app.gigHandler.CreateGig))
	mux.Get("/gigs/:slug", standardMiddleware.ThenFunc(app.gigHandler.GetGigBySlug))

	// Requests
	mux.Get("/requests", optionalAuthMiddleware.ThenFunc(app.requestHandler.ListRequests))
	mux.Post("/requests", authMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Get("/requests/:id", standardMiddleware.ThenFunc(app.requestHandler.GetRequestByID))

	// Proposals
	mux.Get("/proposals", authMiddleware.ThenFunc(app.proposalHandler.ListProposals))
	mux.Post("/proposals", authMiddleware.ThenFunc(app.proposalHandler.CreateProposal))

	// Uploads
	mux.Post("/uploads/presign", authMiddleware.ThenFunc(app.uploadHandler.Presign))

	return mux
}
