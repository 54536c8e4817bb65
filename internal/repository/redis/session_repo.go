package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("session extend failed")
	ErrSessionDelete    = errors.New("session delete failed")
)

const (
	sessionPrefix = "login:user:token"
	sessionTTL    = 30 * time.Minute
)

// SessionRepository 单会话登录态：每个用户只保留最后一次登录的 access token
type SessionRepository struct{}

func (r *SessionRepository) Store(userID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", sessionPrefix, userID)
	if err := Client.Set(context.Background(), key, token, sessionTTL).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) Get(userID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", sessionPrefix, userID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// Extend 每次鉴权通过后顺延过期时间
func (r *SessionRepository) Extend(userID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionPrefix, userID)
	if _, err := Client.Expire(context.Background(), key, sessionTTL).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) Delete(userID uint64) error {
	key := fmt.Sprintf("%s:%d", sessionPrefix, userID)
	if err := Client.Del(context.Background(), key).Err(); err != nil {
		return ErrSessionDelete
	}
	return nil
}
