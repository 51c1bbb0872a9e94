// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot taken by the background monitor.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checked_at"`
}

var (
	healthMu     sync.RWMutex
	healthStatus HealthStatus
)

// GetHealthStatus returns the most recent health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return healthStatus
}

// StartHealthMonitor pings Mongo and every Redis client on a fixed interval
// and records the results. Runs until the process exits.
func StartHealthMonitor(mongoClient *mongo.Client, redisClients ...*redis.Client) {
	check := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		status := HealthStatus{CheckedAt: time.Now().UTC()}
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
		for _, rc := range redisClients {
			status.Redis = append(status.Redis, rc.Ping(ctx).Err() == nil)
		}

		healthMu.Lock()
		healthStatus = status
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
