package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mesa-ledger/internal/core/domain"
)

type campaignDTO struct {
	ID           string    `json:"id"`
	Index        int       `json:"index"`
	Owner        string    `json:"owner"`
	Live         bool      `json:"live"`
	Status       string    `json:"status"`
	VotesFor     uint64    `json:"votes_for"`
	VotesAgainst uint64    `json:"votes_against"`
	Balance      string    `json:"balance"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Providers    int       `json:"providers"`
	CreatedAt    time.Time `json:"created_at"`
}

func toCampaignDTO(c *domain.Campaign) campaignDTO {
	return campaignDTO{
		ID:           c.ID,
		Index:        c.Index,
		Owner:        c.Owner.Hex(),
		Live:         c.Live,
		Status:       string(c.Status),
		VotesFor:     c.VotesFor,
		VotesAgainst: c.VotesAgainst,
		Balance:      domain.FormatTokens(c.Balance),
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Providers:    c.Providers.Len(),
		CreatedAt:    c.CreatedAt,
	}
}

type providerDTO struct {
	Address     string `json:"address"`
	Index       int    `json:"index"`
	Owner       string `json:"owner"`
	Clicks      uint64 `json:"clicks"`
	Impressions uint64 `json:"impressions"`
	Rewards     string `json:"rewards"`
}

func toProviderDTO(p *domain.Provider) providerDTO {
	return providerDTO{
		Address:     p.Address.Hex(),
		Index:       p.Index,
		Owner:       p.Owner.Hex(),
		Clicks:      p.Clicks,
		Impressions: p.Impressions,
		Rewards:     domain.FormatTokens(p.Rewards),
	}
}

type settingsDTO struct {
	CostPerClick      string `json:"cost_per_click"`
	CostPerImpression string `json:"cost_per_impression"`
	AddBalanceFee     uint64 `json:"add_balance_fee"`
	VoteRewardPercent uint64 `json:"vote_reward_percent"`
	VoteThreshold     uint64 `json:"vote_threshold"`
	FeeReceiver       string `json:"fee_receiver"`
}

func toSettingsDTO(s domain.Settings) settingsDTO {
	return settingsDTO{
		CostPerClick:      domain.FormatTokens(s.CostPerClick),
		CostPerImpression: domain.FormatTokens(s.CostPerImpression),
		AddBalanceFee:     s.AddBalanceFee,
		VoteRewardPercent: s.VoteRewardPercent,
		VoteThreshold:     s.VoteThreshold,
		FeeReceiver:       s.FeeReceiver.Hex(),
	}
}

type payoutDTO struct {
	CampaignID string `json:"campaign_id"`
	Provider   string `json:"provider"`
	Amount     string `json:"amount"`
	Exhausted  bool   `json:"exhausted"`
}

type distributionDTO struct {
	Payouts []payoutDTO `json:"payouts"`
	Total   string      `json:"total"`
}

func toDistributionDTO(d domain.Distribution) distributionDTO {
	out := distributionDTO{Payouts: make([]payoutDTO, 0, len(d.Payouts)), Total: domain.FormatTokens(d.Total)}
	for _, p := range d.Payouts {
		out.Payouts = append(out.Payouts, payoutDTO{
			CampaignID: p.CampaignID,
			Provider:   p.Provider.Hex(),
			Amount:     domain.FormatTokens(p.Amount),
			Exhausted:  p.Exhausted,
		})
	}
	return out
}

type amountDTO struct {
	Amount string `json:"amount"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response error", slog.Any("error", err))
	}
}

// statusFor maps the ledger's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEntry):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrZeroClaim), errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransferFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", status)
		return
	}
	h.logger.Debug(op+" rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
	http.Error(w, err.Error(), status)
}
