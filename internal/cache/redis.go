package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrUnexpectedReply = errors.New("unexpected ping reply")

// Redis is a long-lived handle shared by all requests. The underlying client is
// safe for concurrent use.
type Redis struct {
	Client *redis.Client
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedis never dials; an unreachable cache is reported by Ping instead of
// preventing startup. Commands and dials are attempted once: a health probe
// must not retry.
func NewRedis(cfg RedisConfig) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:          cfg.Addr,
		Password:      cfg.Password,
		DB:            cfg.DB,
		MaxRetries:    -1,
		DialerRetries: 1,
	})

	return &Redis{Client: client}
}

func (r *Redis) Close() error {
	return r.Client.Close()
}

func (r *Redis) Addr() string {
	return r.Client.Options().Addr
}

// Ping issues a single PING and requires a PONG back.
func (r *Redis) Ping(ctx context.Context) error {
	reply, err := r.Client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	if reply != "PONG" {
		return fmt.Errorf("%w: %q", ErrUnexpectedReply, reply)
	}

	return nil
}
