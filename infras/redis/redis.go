package redis

import (
	"context"
	"net"
	"time"

	"ourstory/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 3 * time.Second

// New connects the rate limiter store. It returns nil when the limiter is disabled or Redis cannot
// be reached, requests are then served without limiting.
func New(config *config.Config) *goRedis.Client {
	if !config.App.RateLimiter.Enable {
		return nil
	}

	redisConfig := config.Cache.Redis
	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Str("host", redisConfig.Host).Msg("Failed to connect to Redis, rate limiting disabled")

		_ = client.Close()

		return nil
	}

	log.Info().
		Int("db", redisConfig.DB).
		Str("host", redisConfig.Host).
		Str("port", redisConfig.Port).
		Msg("Connected to Redis")

	return client
}
