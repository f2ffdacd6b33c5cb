package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/database"
)

const resetKeyPrefix = "reset_token:"

// ResetTokenRepo stores password reset tokens in Redis with a TTL
type ResetTokenRepo struct {
	client *database.RedisClient
}

// NewResetTokenRepository creates a new reset token repository
func NewResetTokenRepository(client *database.RedisClient) *ResetTokenRepo {
	return &ResetTokenRepo{client: client}
}

// StoreToken stores a token for the user with the given lifetime
func (r *ResetTokenRepo) StoreToken(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	key := resetKeyPrefix + token
	if err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), ttl); err != nil {
		return apperrors.Infrastructure("failed to store reset token", err)
	}
	return nil
}

// ConsumeToken returns the user id for a live token and invalidates it
func (r *ResetTokenRepo) ConsumeToken(ctx context.Context, token string) (int64, error) {
	key := resetKeyPrefix + token

	value, err := r.client.Get(ctx, key)
	if err != nil {
		if err == redis.Nil {
			return 0, apperrors.State("reset token is invalid or expired")
		}
		return 0, apperrors.Infrastructure("failed to read reset token", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, apperrors.Infrastructure("corrupt reset token value", err)
	}

	if err := r.client.Del(ctx, key); err != nil {
		return 0, apperrors.Infrastructure("failed to invalidate reset token", err)
	}

	return userID, nil
}
