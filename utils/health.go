package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Backend   bool      `json:"backend"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. backendCheck pings the external barbershop API. The first check
// runs before this returns so /health never serves the zero snapshot.
func StartHealthMonitor(redisClients []*redis.Client, backendCheck func(context.Context) error) {
	runHealthCheck(redisClients, backendCheck)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			runHealthCheck(redisClients, backendCheck)
		}
	}()
}

func runHealthCheck(redisClients []*redis.Client, backendCheck func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var redisHealth []bool
	for _, client := range redisClients {
		err := client.Ping(ctx).Err()
		redisHealth = append(redisHealth, err == nil)
	}
	backendHealthy := backendCheck(ctx) == nil

	mu.Lock()
	currentHealth = HealthStatus{
		Backend:   backendHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
