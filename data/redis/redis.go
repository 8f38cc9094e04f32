package redis

import (
	"book_rental_dapp/config"
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewSessionStore opens the client behind chat sessions and generation
// counters and checks it answers within the dial timeout.
func NewSessionStore(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.OpTimeout,
		WriteTimeout: cfg.Redis.OpTimeout,
		MaxRetries:   1,
	})

	if cfg.Redis.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Redis.DialTimeout)
		defer cancel()
	}

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", rdb.Options().Addr, err)
	}

	return rdb, nil
}

func MustInitRedis(cfg *config.Config) *redis.Client {
	rdb, err := NewSessionStore(context.Background(), cfg)
	if err != nil {
		slog.Error("Error while connecting Redis", slog.String("error", err.Error()))
		panic(err)
	}
	slog.Info("Redis connected", slog.String("addr", rdb.Options().Addr), slog.Int("db", cfg.Redis.DB))

	return rdb
}
