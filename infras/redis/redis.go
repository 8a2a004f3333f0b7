package redis

import (
	"context"
	"fmt"
	"net"
	"slotbook/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	dialTimeout = 3 * time.Second
	pingTimeout = 3 * time.Second
)

// Options maps the primary node settings onto go-redis options.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:        net.JoinHostPort(primary.Host, primary.Port),
		Password:    primary.Password,
		DB:          primary.DB,
		DialTimeout: dialTimeout,
	}
}

// New connects to the primary node and pings it once.
func New(config *config.Config) (*goRedis.Client, error) {
	options := Options(config)
	client := goRedis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("ping redis %s: %w", options.Addr, err)
	}

	log.Info().
		Int("db", options.DB).
		Str("addr", options.Addr).
		Msg("Connected to Redis")

	return client, nil
}
