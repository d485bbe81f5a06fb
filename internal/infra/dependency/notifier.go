package dependency

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/budget-buddy/backend/config"
	"github.com/budget-buddy/backend/internal/application/adapter"
	"github.com/budget-buddy/backend/internal/integration/notifier"
)

// NewNotifier creates the change notifier selected by cfg.Notifier.Backend.
// The returned close function releases the backend's connections.
func NewNotifier(ctx context.Context, cfg *config.Config) (adapter.ChangeNotifier, func() error, error) {
	switch cfg.Notifier.Backend {
	case config.NotifierMemory, "":
		return notifier.NewMemoryNotifier(), func() error { return nil }, nil
	case config.NotifierRedis:
		client, err := NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return notifier.NewRedisNotifier(client, cfg.Redis.ChannelPrefix), client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported notifier backend %q", cfg.Notifier.Backend)
	}
}

// NewRedisClient connects to Redis and verifies the connection.
// REDIS_PASSWORD and REDIS_DB override the values in the URL when set.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
