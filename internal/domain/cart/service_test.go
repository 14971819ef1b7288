package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/auramart-backend/internal/config"
	"github.com/your-org/auramart-backend/internal/infrastructure/kv"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{
		Session: config.SessionConfig{CookieName: "session_id", TTL: time.Hour},
	}

	return NewService(kv.Wrap(rdb), cfg), mr
}

func TestGetMissingCartIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	c, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Equal(t, "sess-1", c.SessionID)
}

func TestGetRequiresSessionID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestAddPersistsAcrossReads(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", testProduct(1, "Headphones", 299))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sess-1", testProduct(1, "Headphones", 299))
	require.NoError(t, err)
	_, err = svc.Add(ctx, "sess-1", testProduct(3, "Keyboard", 199))
	require.NoError(t, err)

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 797.00, c.Total(), 0.001)
}

func TestSessionIsolation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", testProduct(1, "Headphones", 299))
	require.NoError(t, err)

	other, err := svc.Get(ctx, "sess-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}

func TestUpdateQuantityToZeroRemovesAndPersists(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", testProduct(1, "Headphones", 299))
	require.NoError(t, err)

	_, err = svc.UpdateQuantity(ctx, "sess-1", 1, 0)
	require.NoError(t, err)

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestClearDeletesKey(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", testProduct(1, "Headphones", 299))
	require.NoError(t, err)
	require.True(t, mr.Exists("cart:session:sess-1"))

	require.NoError(t, svc.Clear(ctx, "sess-1"))
	assert.False(t, mr.Exists("cart:session:sess-1"))

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Zero(t, c.Total())
}

func TestCorruptPayloadRehydratesEmpty(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("cart:session:sess-1", "{not json"))

	c, err := svc.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}
