package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"airdrop-platform/internal/core/port"
)

// callerHeader carries the authenticated caller identity. Verifying the
// identity (signatures, sessions) is an outer concern; the handler trusts
// the header and the usecase enforces what that identity may do.
const callerHeader = "X-Caller"

// Handler is the inbound HTTP adapter. It holds the usecase port and a
// structured logger, and registers one route per platform operation on a
// chi router.
type Handler struct {
	svc    port.AirdropUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AirdropUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/platform", h.handleInitialize)
		r.Get("/platform", h.handleGetPlatform)
		r.Put("/platform/operators", h.handleSetOperators)
		r.Put("/platform/fee", h.handleSetFeePerAsset)
		r.Post("/platform/fee/withdrawals", h.handleWithdrawFee)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{campaignID}", h.handleGetCampaign)
		r.Put("/campaigns/{campaignID}", h.handleUpdateCampaign)
		r.Post("/campaigns/{campaignID}/airdrops", h.handleAirdrop)

		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// caller extracts the caller identity header. An empty identity is a
// client error; every mutating operation needs one.
func caller(r *http.Request) string {
	return r.Header.Get(callerHeader)
}
