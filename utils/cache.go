// File: barberbook/utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"barberbook/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds auth sessions keyed by client session id.
	SessionCacheClient *redis.Client
	// CartCacheClient holds serialized carts.
	CartCacheClient *redis.Client
	// BookingCacheClient holds booking drafts and pending confirmations.
	BookingCacheClient *redis.Client
	// EventsCacheClient backs the realtime pub/sub channel.
	EventsCacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes every Redis client the gateway uses.
func InitRedis() {
	SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	CartCacheClient = newClient(config.AppConfig.RedisCartDB)
	BookingCacheClient = newClient(config.AppConfig.RedisBookingDB)
	EventsCacheClient = newClient(config.AppConfig.RedisEventsDB)
}

// GetSessionCacheClient returns the Redis client for auth sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetCartCacheClient returns the Redis client for carts.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		CartCacheClient = newClient(config.AppConfig.RedisCartDB)
	}
	return CartCacheClient
}

// GetBookingCacheClient returns the Redis client for booking state.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		BookingCacheClient = newClient(config.AppConfig.RedisBookingDB)
	}
	return BookingCacheClient
}

// GetEventsCacheClient returns the Redis client for the realtime channel.
func GetEventsCacheClient() *redis.Client {
	if EventsCacheClient == nil {
		EventsCacheClient = newClient(config.AppConfig.RedisEventsDB)
	}
	return EventsCacheClient
}
