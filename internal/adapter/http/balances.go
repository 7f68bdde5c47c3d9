package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-ledger/internal/core/domain"
)

type depositResponse struct {
	Fee string `json:"fee"`
	Net string `json:"net"`
}

// handleDeposit funds a campaign. The body amount is a decimal token string.
func (h *Handler) handleDeposit(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[amountDTO](h, w, r)
	if !ok {
		return
	}
	amount, err := domain.ParseTokens(body.Amount)
	if err != nil {
		h.fail(w, r, "deposit", err)
		return
	}
	res, err := h.svc.AddBalance(r.Context(), caller, chi.URLParam(r, "id"), amount)
	if err != nil {
		h.fail(w, r, "deposit", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, depositResponse{
		Fee: domain.FormatTokens(res.Fee),
		Net: domain.FormatTokens(res.Net),
	})
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.Withdraw(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "withdraw", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, amountDTO{Amount: domain.FormatTokens(amount)})
}

func (h *Handler) handleReturnBalances(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	total, err := h.svc.ReturnAllBalances(r.Context(), caller)
	if err != nil {
		h.fail(w, r, "return balances", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, amountDTO{Amount: domain.FormatTokens(total)})
}

func (h *Handler) handleDistribute(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	d, err := h.svc.Distribute(r.Context(), caller)
	if err != nil {
		h.fail(w, r, "distribute", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toDistributionDTO(d))
}

func (h *Handler) handleClaim(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	amount, err := h.svc.Claim(r.Context(), caller)
	if err != nil {
		h.fail(w, r, "claim", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, amountDTO{Amount: domain.FormatTokens(amount)})
}

func (h *Handler) handleClaimable(w http.ResponseWriter, r *http.Request) {
	addr, err := domain.ParseAddress(chi.URLParam(r, "addr"))
	if err != nil {
		h.fail(w, r, "claimable", err)
		return
	}
	amount, err := h.svc.Claimable(r.Context(), addr)
	if err != nil {
		h.fail(w, r, "claimable", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, amountDTO{Amount: domain.FormatTokens(amount)})
}

// handleQuote prices ?clicks=&impressions= at current settings.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clicks, err := parseCount(q.Get("clicks"))
	if err != nil {
		http.Error(w, "invalid clicks", http.StatusBadRequest)
		return
	}
	impressions, err := parseCount(q.Get("impressions"))
	if err != nil {
		http.Error(w, "invalid impressions", http.StatusBadRequest)
		return
	}
	amount, err := h.svc.Quote(r.Context(), clicks, impressions)
	if err != nil {
		h.fail(w, r, "quote", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, amountDTO{Amount: domain.FormatTokens(amount)})
}

func parseCount(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseUint(s, 10, 64)
}
