package httpadapter

import (
	"net/http"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

type settingsBody struct {
	CostPerClick      *string `json:"cost_per_click"`
	CostPerImpression *string `json:"cost_per_impression"`
	AddBalanceFee     *uint64 `json:"add_balance_fee"`
	VoteRewardPercent *uint64 `json:"vote_reward_percent"`
	VoteThreshold     *uint64 `json:"vote_threshold"`
	FeeReceiver       *string `json:"fee_receiver"`
}

func (b settingsBody) update() (port.SettingsUpdate, error) {
	upd := port.SettingsUpdate{
		AddBalanceFee:     b.AddBalanceFee,
		VoteRewardPercent: b.VoteRewardPercent,
		VoteThreshold:     b.VoteThreshold,
	}
	if b.CostPerClick != nil {
		v, err := domain.ParseTokens(*b.CostPerClick)
		if err != nil {
			return upd, err
		}
		upd.CostPerClick = &v
	}
	if b.CostPerImpression != nil {
		v, err := domain.ParseTokens(*b.CostPerImpression)
		if err != nil {
			return upd, err
		}
		upd.CostPerImpression = &v
	}
	if b.FeeReceiver != nil {
		a, err := domain.ParseAddress(*b.FeeReceiver)
		if err != nil {
			return upd, err
		}
		upd.FeeReceiver = &a
	}
	return upd, nil
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings(r.Context())
	if err != nil {
		h.fail(w, r, "get settings", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toSettingsDTO(s))
}

// handleUpdateSettings applies the fields present in the body.
func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[settingsBody](h, w, r)
	if !ok {
		return
	}
	upd, err := body.update()
	if err != nil {
		h.fail(w, r, "update settings", err)
		return
	}
	s, err := h.svc.UpdateSettings(r.Context(), caller, upd)
	if err != nil {
		h.fail(w, r, "update settings", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toSettingsDTO(s))
}
