// Package cache holds the Redis client and the clothing read-through cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghuser/wardrobe/pkg/config"
)

// RedisClient owns the connection pool shared by sessions and the clothing
// cache.
type RedisClient struct {
	client *redis.Client
}

// options turns cfg into redis.Options. Zero pool settings keep go-redis
// defaults.
func options(cfg *config.Config) (*redis.Options, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	if cfg.RedisPoolSize > 0 {
		opts.PoolSize = cfg.RedisPoolSize
	}
	if cfg.RedisMinIdleConns > 0 {
		opts.MinIdleConns = cfg.RedisMinIdleConns
	}
	if cfg.RedisDialTimeout > 0 {
		opts.DialTimeout = cfg.RedisDialTimeout
	}
	if cfg.RedisIOTimeout > 0 {
		opts.ReadTimeout = cfg.RedisIOTimeout
		opts.WriteTimeout = cfg.RedisIOTimeout
		opts.PoolTimeout = cfg.RedisIOTimeout + time.Second
	}
	opts.MaxRetries = 3
	return opts, nil
}

// NewRedisClient connects to cfg.RedisURL and fails fast when the server does
// not answer a PING within the dial timeout.
func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)

	timeout := opts.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", opts.Addr, err)
	}
	return &RedisClient{client: rdb}, nil
}

// Ping reports whether Redis answers. It backs the "redis" health probe.
func (r *RedisClient) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("redis close: %w", err)
	}
	return nil
}

// Client exposes the pool for the session store.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}
