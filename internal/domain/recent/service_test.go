package recent

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

func TestAddPrependsMostRecent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "sess-1", 1)
	require.NoError(t, err)
	ids, err := svc.Add(ctx, "sess-1", 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 1}, ids)
}

func TestAddDeduplicates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []int{1, 2, 3, 1} {
		_, err := svc.Add(ctx, "sess-1", id)
		require.NoError(t, err)
	}

	ids, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2}, ids)
}

func TestAddWithFrontIDLeavesListUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []int{1, 2, 3} {
		_, err := svc.Add(ctx, "sess-1", id)
		require.NoError(t, err)
	}

	ids, err := svc.Add(ctx, "sess-1", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, ids)
}

func TestEvictsBeyondEightEntries(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// View products 1 through 9 in order: id 1 is evicted
	for id := 1; id <= 9; id++ {
		_, err := svc.Add(ctx, "sess-1", id)
		require.NoError(t, err)
	}

	ids, err := svc.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2}, ids)
	assert.LessOrEqual(t, len(ids), 8)
}

func TestListMissingSessionIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	ids, err := svc.List(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCorruptPayloadRehydratesEmpty(t *testing.T) {
	svc, mr := newTestService(t)

	require.NoError(t, mr.Set("recent:session:sess-1", "[1,2,"))

	ids, err := svc.List(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
