package wishlist

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

func TestToggleIsItsOwnInverse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Three toggles in a row: in, out, in
	in, err := svc.Toggle(ctx, "sess-1", 5)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.Toggle(ctx, "sess-1", 5)
	require.NoError(t, err)
	assert.False(t, in)

	in, err = svc.Toggle(ctx, "sess-1", 5)
	require.NoError(t, err)
	assert.True(t, in)

	contains, err := svc.Contains(ctx, "sess-1", 5)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestToggleKeepsOtherMembers(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "sess-1", 1)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "sess-1", 2)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, "sess-1", 1)
	require.NoError(t, err)

	ids, err := svc.IDs(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids)
}

func TestContainsOnEmptySession(t *testing.T) {
	svc, _ := newTestService(t)

	contains, err := svc.Contains(context.Background(), "sess-1", 5)
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestTogglePersistsAcrossServiceInstances(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "sess-1", 3)
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := &config.Config{Session: config.SessionConfig{TTL: time.Hour}}
	fresh := NewService(kv.Wrap(rdb), cfg)

	contains, err := fresh.Contains(ctx, "sess-1", 3)
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestCorruptPayloadRehydratesEmpty(t *testing.T) {
	svc, mr := newTestService(t)

	require.NoError(t, mr.Set("wishlist:session:sess-1", "not-json"))

	ids, err := svc.IDs(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
