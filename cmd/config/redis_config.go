package config

import (
	"context"
	"fmt"
	"time"

	"Go-Recipe-Share/internal/utils"
	"Go-Recipe-Share/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisMaxRetries = 5

// ConnectSessionStorage returns Redis-backed session storage, or nil (in
// memory) when no Redis address is configured.
func ConnectSessionStorage(ctx context.Context, cfg utils.Config, log *zap.Logger) (fiber.Storage, error) {
	if cfg.RedisAddr == "" {
		log.Warn("REDIS_ADDR not set, sessions are kept in memory")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	for i := 0; i < redisMaxRetries; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()

		if err == nil {
			log.Info("connected to redis", zap.String("addr", cfg.RedisAddr), zap.Int("db", cfg.RedisDB))
			return session.NewRedisStorage(rdb), nil
		}
		if i == redisMaxRetries-1 {
			_ = rdb.Close()
			return nil, fmt.Errorf("failed to connect to redis after %d retries: %w", redisMaxRetries, err)
		}

		backoff := time.Duration(1<<i) * time.Second
		log.Warn("redis not ready", zap.Duration("retry_in", backoff), zap.Int("attempt", i+1))
		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, nil
}
