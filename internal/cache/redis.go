package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard cache keys
const (
	StockSummaryKeyFmt = "stock:summary:%s"
	CashSummaryKeyFmt  = "cash:summary:%s"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when Redis is unavailable
func GetClient() *redis.Client {
	return client
}

// StockSummaryKey builds the cache key for a branch's stock summary
func StockSummaryKey(branch string) string {
	return fmt.Sprintf(StockSummaryKeyFmt, branch)
}

// CashSummaryKey builds the cache key for a branch's cashbook summary
func CashSummaryKey(branch string) string {
	return fmt.Sprintf(CashSummaryKeyFmt, branch)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateStockCaches clears every cached stock summary.
// Called when: production, dispatch or damage records change.
func InvalidateStockCaches(ctx context.Context) {
	InvalidatePattern(ctx, "stock:summary:*")
}

// InvalidateCashCaches clears every cached cashbook summary.
// Called when: cash entries change.
func InvalidateCashCaches(ctx context.Context) {
	InvalidatePattern(ctx, "cash:summary:*")
}
