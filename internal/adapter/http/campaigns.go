package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mesa-ledger/internal/core/domain"
	"mesa-ledger/internal/core/port"
)

type createCampaignBody struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.Campaigns(r.Context())
	if err != nil {
		h.fail(w, r, "list campaigns", err)
		return
	}
	out := make([]campaignDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignDTO(c))
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Campaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get campaign", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toCampaignDTO(c))
}

func (h *Handler) handleGetVoters(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Campaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "get voters", err)
		return
	}
	voters := make([]string, 0, len(c.Voters))
	for _, v := range c.Voters {
		voters = append(voters, v.Hex())
	}
	writeJSON(w, h.logger, http.StatusOK, voters)
}

// handleCreateCampaign registers the campaign named in the path. The body
// carries RFC3339 start and end dates.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[createCampaignBody](h, w, r)
	if !ok {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), caller, port.CreateCampaignReq{
		ID:        chi.URLParam(r, "id"),
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	})
	if err != nil {
		h.fail(w, r, "create campaign", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, toCampaignDTO(c))
}

func (h *Handler) handleRemoveCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveCampaign(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "remove campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type liveBody struct {
	Live bool `json:"live"`
}

func (h *Handler) handleSetLive(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[liveBody](h, w, r)
	if !ok {
		return
	}
	if err := h.svc.SetLive(r.Context(), caller, chi.URLParam(r, "id"), body.Live); err != nil {
		h.fail(w, r, "set live", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type endDateBody struct {
	EndDate time.Time `json:"end_date"`
}

func (h *Handler) handleSetEndDate(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[endDateBody](h, w, r)
	if !ok {
		return
	}
	if err := h.svc.SetEndDate(r.Context(), caller, chi.URLParam(r, "id"), body.EndDate); err != nil {
		h.fail(w, r, "set end date", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type approvalBody struct {
	Approved bool `json:"approved"`
}

func (h *Handler) handleSetApproval(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[approvalBody](h, w, r)
	if !ok {
		return
	}
	if err := h.svc.SetApproval(r.Context(), caller, chi.URLParam(r, "id"), body.Approved); err != nil {
		h.fail(w, r, "set approval", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResetVotes(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	if err := h.svc.ResetVotes(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		h.fail(w, r, "reset votes", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type voteBody struct {
	Ballot int `json:"ballot"`
}

type voteResponse struct {
	Status             string `json:"status"`
	ProviderRegistered bool   `json:"provider_registered"`
	TotalVotes         uint64 `json:"total_votes"`
	Reward             string `json:"reward"`
}

// handleVote casts a ballot: 1 supports the campaign, 0 opposes it.
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	caller, body, ok := decodeAs[voteBody](h, w, r)
	if !ok {
		return
	}
	ballot, err := domain.ParseBallot(body.Ballot)
	if err != nil {
		h.fail(w, r, "vote", err)
		return
	}
	res, err := h.svc.Vote(r.Context(), caller, chi.URLParam(r, "id"), ballot)
	if err != nil {
		h.fail(w, r, "vote", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, voteResponse{
		Status:             string(res.Transition),
		ProviderRegistered: res.ProviderRegistered,
		TotalVotes:         res.TotalVotes,
		Reward:             domain.FormatTokens(res.Reward),
	})
}

func (h *Handler) handleFinalize(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	status, err := h.svc.FinalizeVoting(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "finalize voting", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	addr, err := callerFrom(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return addr, false
	}
	return addr, true
}

// maxBodyBytes caps request bodies.
const maxBodyBytes = 64 << 10

// decodeAs resolves the caller and decodes the JSON body into T.
func decodeAs[T any](h *Handler, w http.ResponseWriter, r *http.Request) (domain.Address, T, bool) {
	var body T
	caller, ok := h.caller(w, r)
	if !ok {
		return caller, body, false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return caller, body, false
		}
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return caller, body, false
	}
	return caller, body, true
}
