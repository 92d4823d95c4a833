package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns nil, nil when Redis is unreachable and not required,
// so the product cache can run disabled.
func ConnectRedis(ctx context.Context, cfg *Config, logger *zap.Logger) (*redis.Client, error) {
	required := cfg.CartStore == CartStoreRedis

	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			if required {
				return nil, fmt.Errorf("parse REDIS_URL: %w", err)
			}
			logger.Warn("invalid REDIS_URL, running without cache", zap.Error(err))
			return nil, nil
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		if required {
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Warn("redis connection failed, running without cache", zap.Error(err))
		return nil, nil
	}

	logger.Info("redis connected", zap.String("addr", opt.Addr))
	return client, nil
}
