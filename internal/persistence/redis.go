package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/config"
)

var errRedisNotConfigured = errors.New("redis client not configured")

// Redis wraps the go-redis client used for department event fan-out.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
// An empty address yields a wrapper with no client.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Warn("REDIS_ADDR not provided; event fan-out disabled")
		return &Redis{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Publish sends payload on channel.
func (r *Redis) Publish(ctx context.Context, channel string, payload []byte) error {
	if r == nil || r.Client == nil {
		return errRedisNotConfigured
	}
	return r.Client.Publish(ctx, channel, payload).Err()
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errRedisNotConfigured
	}
	return r.Client.Ping(ctx).Err()
}
