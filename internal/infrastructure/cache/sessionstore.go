package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session"
)

const sessionPrefix = "session:"

// RedisSessionStore persists sessions in Redis with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a new RedisSessionStore.
func NewRedisSessionStore(client *redis.Client) session.Store {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *session.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns nil without error for an unknown or expired session.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	data, err := s.client.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Touch refreshes LastSeenAt and re-arms the TTL. Touching an unknown
// session is a no-op.
func (s *RedisSessionStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	sess.LastSeenAt = time.Now()
	return s.Save(ctx, sess, ttl)
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
