package redisstore

import (
	"context"
	"strconv"
	"time"

	"warbler/warbler/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	SessionTTL    = 24 * time.Hour
	SessionCookie = "warbler_session"
)

// SessionStore maps opaque session tokens to user ids in Redis. The
// token is the only thing the browser holds; identity lives server-side.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(cfg config.Config) *SessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return &SessionStore{rdb: rdb}
}

// Create stores a new session token for the user and returns it.
func (s *SessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	err := s.rdb.Set(ctx, "session:"+token, strconv.FormatUint(uint64(userID), 10), SessionTTL).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to a user id. Returns (0, false, nil) for an
// unknown or expired token.
func (s *SessionStore) Get(ctx context.Context, token string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, "session:"+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return uint(id), true, nil
}

// Delete removes a session token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "session:"+token).Err()
}

func (s *SessionStore) Close() error {
	return s.rdb.Close()
}
