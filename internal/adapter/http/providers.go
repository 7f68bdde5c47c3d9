package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

func (h *Handler) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	addr, err := domain.ParseAddress(chi.URLParam(r, "addr"))
	if err != nil {
		h.fail(w, r, "get provider", err)
		return
	}
	p, err := h.svc.Provider(r.Context(), chi.URLParam(r, "id"), addr)
	if err != nil {
		h.fail(w, r, "get provider", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toProviderDTO(p))
}

func (h *Handler) handleRegisterProvider(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	p, err := h.svc.RegisterProvider(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "register provider", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, toProviderDTO(p))
}

func (h *Handler) handleRemoveProvider(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveProvider(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "remove provider", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type activityBody struct {
	Clicks      uint64 `json:"clicks"`
	Impressions uint64 `json:"impressions"`
}

// handleRecordActivity sets absolute counters; they may not go down.
func (h *Handler) handleRecordActivity(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[activityBody](h, w, r)
	if !ok {
		return
	}
	addr, err := domain.ParseAddress(chi.URLParam(r, "addr"))
	if err != nil {
		h.fail(w, r, "record activity", err)
		return
	}
	err = h.svc.RecordActivity(r.Context(), caller, port.ActivityReq{
		CampaignID:  chi.URLParam(r, "id"),
		Provider:    addr,
		Clicks:      body.Clicks,
		Impressions: body.Impressions,
	})
	if err != nil {
		h.fail(w, r, "record activity", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResetRewards(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	addr, err := domain.ParseAddress(chi.URLParam(r, "addr"))
	if err != nil {
		h.fail(w, r, "reset rewards", err)
		return
	}
	if err = h.svc.ResetProviderRewards(r.Context(), caller, chi.URLParam(r, "id"), addr); err != nil {
		h.fail(w, r, "reset rewards", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
