package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"mywallet/internal/models"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "mywallet:session:"

// SessionRedis keeps sessions as plain keys without TTL.
type SessionRedis struct {
	rdb *redis.Client
}

func NewSessionRedis(rdb *redis.Client) *SessionRedis { return &SessionRedis{rdb: rdb} }

var _ SessionRepo = (*SessionRedis)(nil)

func sessionKey(token string) string { return sessionKeyPrefix + token }

// Create stores the token only if it is not already taken.
func (r *SessionRedis) Create(ctx context.Context, userID int, token string) error {
	ok, err := r.rdb.SetNX(ctx, sessionKey(token), userID, 0).Result()
	if err != nil {
		return fmt.Errorf("store session for user %d: %w", userID, err)
	}
	if !ok {
		return fmt.Errorf("store session for user %d: token collision", userID)
	}
	return nil
}

func (r *SessionRedis) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	val, err := r.rdb.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return nil, fmt.Errorf("decode session user id %q: %w", val, err)
	}
	return &models.Session{UserID: userID, Token: token}, nil
}
