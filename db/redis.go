package db

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const responseCachePrefix = "agroworld:cache:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// ResponseCache stores upstream HTTP bodies keyed by a hash of the request
// URL, so repeated provider calls inside the reuse window hit Redis instead
// of the network.
type ResponseCache struct {
	client *redis.Client
}

func NewResponseCache(client *redis.Client) *ResponseCache {
	return &ResponseCache{client: client}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	val, err := c.client.Get(Ctx, responseCachePrefix+hashKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ResponseCache) Set(key string, value []byte, ttl time.Duration) {
	c.client.Set(Ctx, responseCachePrefix+hashKey(key), value, ttl)
}

func hashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", sum)[:16]
}
