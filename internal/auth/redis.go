package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "portfolio:sess:" // portfolio:sess:{token} -> admin id

// RedisSessions stores session tokens in redis with a TTL, so sessions
// survive an API restart even though the portfolio data does not.
type RedisSessions struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessions(client *redis.Client, ttl time.Duration) *RedisSessions {
	return &RedisSessions{client: client, ttl: ttl}
}

func (r *RedisSessions) Create(ctx context.Context, adminID int) (string, error) {
	token := uuid.New().String()

	if err := r.client.Set(ctx, r.key(token), adminID, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func (r *RedisSessions) Resolve(ctx context.Context, token string) (int, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	adminID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return adminID, nil
}

func (r *RedisSessions) Invalidate(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate session: %w", err)
	}
	return nil
}

func (r *RedisSessions) key(token string) string {
	return sessionKeyPrefix + token
}
