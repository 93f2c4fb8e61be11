package cache

import (
	"context"
	"os"
	"time"

	"fitplanhub-backend/utils"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis ouvre la connexion Redis. L'application continue sans cache si
// Redis n'est pas joignable.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		utils.LogError(err, "Redis connection warning (continuing without cache)")
		Client = nil
	} else {
		utils.LogSuccess("Redis connected successfully")
	}
}
