// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"maison/config"

	"github.com/go-redis/redis/v8"
)

// CartCacheClient is the dedicated client for cart persistence.
var CartCacheClient *redis.Client

// InitCartCache initializes the redis client backing cart storage.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Cache): %v", err)
	}
}

// GetCartCacheClient returns the cart cache client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}
