package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/LucasFelipeJesus/portal-chamados/internal/domain/wizard"
)

const (
	draftPrefix = "wizard:draft:"

	// draftTTL bounds how long an abandoned wizard survives between
	// requests. Each save re-arms it.
	draftTTL = 24 * time.Hour
)

// RedisDraftStore keeps one wizard draft per user in Redis.
type RedisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore creates a new RedisDraftStore.
func NewRedisDraftStore(client *redis.Client) wizard.DraftStore {
	return &RedisDraftStore{client: client}
}

func draftKey(userID uint) string {
	return draftPrefix + strconv.FormatUint(uint64(userID), 10)
}

// Get returns nil without error when the user has no draft in progress.
func (s *RedisDraftStore) Get(ctx context.Context, userID uint) (*wizard.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d wizard.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &d, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, d *wizard.Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(d.UserID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, draftKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
