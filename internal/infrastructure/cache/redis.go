package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedConfig "github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
)

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *sharedConfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
