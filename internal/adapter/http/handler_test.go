package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-ledger/internal/adapter/memory"
	"mesa-ledger/internal/adapter/usecase"
	"mesa-ledger/internal/core/domain"
)

var (
	owner    = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	treasury = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	feeAddr  = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	creator  = common.HexToAddress("0x00000000000000000000000000000000000000b1")
	stranger = common.HexToAddress("0x00000000000000000000000000000000000000c1")
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type testServer struct {
	srv  *httptest.Server
	auth *Authenticator
	now  time.Time
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	value := memory.NewValueLedger(treasury)
	value.Mint(creator, domain.Tokens(5000))
	roles := memory.NewRoles()
	roles.Grant(domain.RoleAdmin, owner)
	roles.Grant(domain.RoleCampaignCreator, creator)

	svc, err := usecase.NewLedgerUseCase(context.Background(),
		domain.NewState(owner, domain.DefaultSettings(feeAddr)),
		usecase.Deps{
			Repo:        memory.NewStateStore(),
			Value:       value,
			Credentials: memory.NewCredentials(),
			Access:      roles,
			Events:      memory.NewEventLog(logger),
			Clock:       fixedClock{now},
			Logger:      logger,
		},
		usecase.Options{ApprovalRequired: true},
	)
	require.NoError(t, err)

	auth := NewAuthenticator("test-secret", "mesa-ledger")
	srv := httptest.NewServer(NewHandler(svc, auth, logger).Router())
	t.Cleanup(srv.Close)
	return &testServer{srv: srv, auth: auth, now: now}
}

func (s *testServer) do(t *testing.T, method, path string, as *domain.Address, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.srv.URL+"/api/v1"+path, &buf)
	require.NoError(t, err)
	if as != nil {
		tok, err := s.auth.Issue(*as, time.Now().Add(time.Hour))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestMutationsRequireToken(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/claim", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, s.srv.URL+"/api/v1/claim", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	bad, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
}

func TestTokenFromOtherIssuerRejected(t *testing.T) {
	other := NewAuthenticator("test-secret", "someone-else")
	tok, err := other.Issue(creator, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = NewAuthenticator("test-secret", "mesa-ledger").Verify(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCampaignLifecycle(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/campaigns/summer", &creator, createCampaignBody{
		StartDate: s.now.Add(24 * time.Hour),
		EndDate:   s.now.Add(30 * 24 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[campaignDTO](t, resp)
	assert.Equal(t, 1, created.Index)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, creator.Hex(), created.Owner)

	resp = s.do(t, http.MethodPost, "/campaigns/summer/deposit", &creator, amountDTO{Amount: "1000"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dep := decodeBody[depositResponse](t, resp)
	assert.Equal(t, "200", dep.Fee)
	assert.Equal(t, "800", dep.Net)

	resp = s.do(t, http.MethodGet, "/campaigns/summer", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "800", decodeBody[campaignDTO](t, resp).Balance)

	resp = s.do(t, http.MethodPost, "/campaigns/summer", &creator, createCampaignBody{
		StartDate: s.now.Add(24 * time.Hour),
		EndDate:   s.now.Add(48 * time.Hour),
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/campaigns/summer/withdraw", &stranger, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/campaigns/summer/withdraw", &creator, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "800", decodeBody[amountDTO](t, resp).Amount)

	resp = s.do(t, http.MethodDelete, "/campaigns/summer", &creator, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/campaigns", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]campaignDTO](t, resp))
}

func TestVoteByIneligibleCaller(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/campaigns/c1", &creator, createCampaignBody{
		StartDate: s.now.Add(time.Hour),
		EndDate:   s.now.Add(48 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/campaigns/c1/votes", &stranger, voteBody{Ballot: 1})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/campaigns/c1/votes", &owner, voteBody{Ballot: 7})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodPost, "/campaigns/c1/votes", &owner, voteBody{Ballot: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	vote := decodeBody[voteResponse](t, resp)
	assert.Equal(t, uint64(1), vote.TotalVotes)
	assert.True(t, vote.ProviderRegistered)

	resp = s.do(t, http.MethodGet, "/campaigns/c1/voters", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{owner.Hex()}, decodeBody[[]string](t, resp))
}

func TestReadEndpoints(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/campaigns/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/settings", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	settings := decodeBody[settingsDTO](t, resp)
	assert.Equal(t, "0.05", settings.CostPerClick)
	assert.Equal(t, "0.005", settings.CostPerImpression)
	assert.Equal(t, uint64(20), settings.AddBalanceFee)

	resp = s.do(t, http.MethodGet, "/quote?clicks=10", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0.49975", decodeBody[amountDTO](t, resp).Amount)

	resp = s.do(t, http.MethodGet, "/quote?clicks=-1", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, http.MethodGet, "/claimable/"+stranger.Hex(), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0", decodeBody[amountDTO](t, resp).Amount)

	resp = s.do(t, http.MethodGet, "/claimable/nonsense", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateSettings(t *testing.T) {
	s := newTestServer(t)

	fee := uint64(60)
	resp := s.do(t, http.MethodPut, "/settings", &owner, settingsBody{AddBalanceFee: &fee})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	cpc := "0.1"
	resp = s.do(t, http.MethodPut, "/settings", &stranger, settingsBody{CostPerClick: &cpc})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(t, http.MethodPut, "/settings", &owner, settingsBody{CostPerClick: &cpc})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0.1", decodeBody[settingsDTO](t, resp).CostPerClick)
}

func TestOversizedBodyRejected(t *testing.T) {
	s := newTestServer(t)
	body := amountDTO{Amount: strings.Repeat("1", maxBodyBytes)}
	resp := s.do(t, http.MethodPost, "/campaigns/summer/deposit", &creator, body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestClaimWithNothingAccrued(t *testing.T) {
	s := newTestServer(t)
	resp := s.do(t, http.MethodPost, "/claim", &stranger, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		domain.ErrCampaignNotFound: http.StatusNotFound,
		domain.ErrProviderExists:   http.StatusConflict,
		domain.ErrNotEligible:      http.StatusForbidden,
		domain.ErrInvalidParameter: http.StatusBadRequest,
		domain.ErrZeroClaim:        http.StatusConflict,
		domain.ErrVotingClosed:     http.StatusConflict,
		domain.ErrTransferFailure:  http.StatusBadGateway,
		io.ErrUnexpectedEOF:        http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(err), err.Error())
	}
}
