package connect

import (
	"context"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/storage/redis"
	"github.com/sketchsync/backend/config"
)

// InitRatelimiter is a function that connects the redis storage backing the
// rate limiter middleware
func (c *Connector) InitRatelimiter(env *config.Env) {
	store := redis.New(redis.Config{
		Username: env.RedisRatelimiterUsername,
		Password: env.RedisRatelimiterPassword,
		Host:     env.RedisRatelimiterHost,
		Port:     env.RedisRatelimiterPort,
	})

	if err := store.Conn().Ping(context.Background()).Err(); err != nil {
		logger.Errorf(err)
	}

	c.Ratelimter = store
}
