package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func TestRedisSessions_RoundTrip(t *testing.T) {
	ctx := context.Background()
	client, _ := setupTestRedis(t)
	sessions := NewRedisSessions(client, time.Hour)

	token, err := sessions.Create(ctx, 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 7, adminID)

	require.NoError(t, sessions.Invalidate(ctx, token))
	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// invalidating again is fine
	assert.NoError(t, sessions.Invalidate(ctx, token))
}

func TestRedisSessions_TTL(t *testing.T) {
	ctx := context.Background()
	client, mr := setupTestRedis(t)
	sessions := NewRedisSessions(client, time.Minute)

	token, err := sessions.Create(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
