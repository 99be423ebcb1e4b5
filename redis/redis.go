package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("Connected to Redis")
}

// MarkOnce sets key if it does not exist yet and reports whether this caller won.
// Used to make sure a reminder goes out a single time per appointment.
func MarkOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return Client.SetNX(ctx, key, "1", ttl).Result()
}
