package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-ledger/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Reads are public; every mutating route requires a bearer token whose
// subject is the acting address.
type Handler struct {
	svc    port.LedgerUseCase
	auth   *Authenticator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.LedgerUseCase, auth *Authenticator, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/voters", h.handleGetVoters)
		r.Get("/campaigns/{id}/providers/{addr}", h.handleGetProvider)
		r.Get("/claimable/{addr}", h.handleClaimable)
		r.Get("/settings", h.handleGetSettings)
		r.Get("/quote", h.handleQuote)

		r.Group(func(r chi.Router) {
			r.Use(h.auth.Middleware)

			r.Post("/campaigns/{id}", h.handleCreateCampaign)
			r.Delete("/campaigns/{id}", h.handleRemoveCampaign)
			r.Post("/campaigns/{id}/live", h.handleSetLive)
			r.Post("/campaigns/{id}/end-date", h.handleSetEndDate)
			r.Post("/campaigns/{id}/approval", h.handleSetApproval)
			r.Post("/campaigns/{id}/votes/reset", h.handleResetVotes)
			r.Post("/campaigns/{id}/votes", h.handleVote)
			r.Post("/campaigns/{id}/finalize", h.handleFinalize)
			r.Post("/campaigns/{id}/deposit", h.handleDeposit)
			r.Post("/campaigns/{id}/withdraw", h.handleWithdraw)

			r.Post("/campaigns/{id}/providers", h.handleRegisterProvider)
			r.Delete("/campaigns/{id}/providers", h.handleRemoveProvider)
			r.Put("/campaigns/{id}/providers/{addr}/activity", h.handleRecordActivity)
			r.Post("/campaigns/{id}/providers/{addr}/rewards/reset", h.handleResetRewards)

			r.Post("/distribute", h.handleDistribute)
			r.Post("/balances/return", h.handleReturnBalances)
			r.Post("/claim", h.handleClaim)
			r.Put("/settings", h.handleUpdateSettings)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
