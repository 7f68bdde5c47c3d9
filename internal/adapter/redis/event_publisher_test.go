package redisadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-ledger/internal/core/domain"
)

func TestEventValues(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	actor := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	e := domain.NewEvent(domain.EventBalanceAdded, actor, at).
		ForCampaign("A").
		WithAmount(domain.Tokens(1000)).
		With("fee", "200")

	values := eventValues(e)

	assert.Equal(t, e.ID, values["id"])
	assert.Equal(t, domain.EventBalanceAdded, values["name"])
	assert.Equal(t, "A", values["campaign_id"])
	assert.Equal(t, actor.Hex(), values["actor"])
	assert.Equal(t, "1000000000000000000000", values["amount"])
	assert.Equal(t, "2026-01-02T03:04:05Z", values["at"])

	var attrs map[string]string
	require.NoError(t, json.Unmarshal([]byte(values["attrs"].(string)), &attrs))
	assert.Equal(t, map[string]string{"fee": "200"}, attrs)
}

func TestEventValuesWithoutAttrs(t *testing.T) {
	e := domain.NewEvent(domain.EventRewardsClaimed, common.Address{}, time.Now())
	_, ok := eventValues(e)["attrs"]
	assert.False(t, ok)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishNothingSkipsRedis(t *testing.T) {
	// nothing listens here, so any round trip would fail
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	p := NewEventPublisher(rdb, "events", 10, discardLogger())

	assert.NoError(t, p.Publish(context.Background()))
}

func TestPublishReportsUnreachableRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	p := NewEventPublisher(rdb, "events", 10, discardLogger())

	e := domain.NewEvent(domain.EventRewardsClaimed, common.Address{}, time.Now())
	assert.Error(t, p.Publish(context.Background(), e))
}

// TestPublishAppendsToStream runs against the server named by
// MESA_LEDGER_TEST_REDIS.
func TestPublishAppendsToStream(t *testing.T) {
	addr := os.Getenv("MESA_LEDGER_TEST_REDIS")
	if addr == "" {
		t.Skip("MESA_LEDGER_TEST_REDIS not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	stream := "mesa.ledger.test." + time.Now().Format("150405.000000")
	t.Cleanup(func() { rdb.Del(ctx, stream) })

	p := NewEventPublisher(rdb, stream, 100, discardLogger())
	first := domain.NewEvent(domain.EventVoteCast, common.Address{}, time.Now()).ForCampaign("A")
	second := domain.NewEvent(domain.EventRewardsClaimed, common.Address{}, time.Now())
	require.NoError(t, p.Publish(ctx, first, second))

	msgs, err := rdb.XRange(ctx, stream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, first.ID, msgs[0].Values["id"])
	assert.Equal(t, "A", msgs[0].Values["campaign_id"])
	assert.Equal(t, domain.EventRewardsClaimed, msgs[1].Values["name"])
}
