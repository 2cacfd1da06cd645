package services

import (
	"context"
	"encoding/json"
	"lahmah_server/config"
	"lahmah_server/structs"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

const (
	settingsCacheKey  = "lahmah:settings"
	reportCacheKey    = "lahmah:report"
	dashboardCacheKey = "lahmah:dashboard"
)

// CacheService provides Redis caching for the read-heavy snapshots the
// dashboard polls: the settings singleton and the computed reports.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// GetJSON loads a cached value into dest. A miss returns (false, nil).
func (cs *CacheService) GetJSON(key string, dest any) (bool, error) {
	raw, err := cs.client.Get(redisCtx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under key for the given TTL
func (cs *CacheService) SetJSON(key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.client.Set(redisCtx, key, raw, ttl).Err()
}

// Invalidate drops the given keys, ignoring misses
func (cs *CacheService) Invalidate(keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cs.client.Del(redisCtx, keys...).Err(); err != nil {
		cs.logger.Warn("Failed to invalidate cache keys", gecho.Field("keys", keys), gecho.Field("error", err))
	}
}

// InvalidateReports drops the report and dashboard snapshots after any order,
// product or customer mutation.
func (cs *CacheService) InvalidateReports() {
	cs.Invalidate(reportCacheKey, dashboardCacheKey)
}

// InvalidateSettings drops the cached settings row after an update
func (cs *CacheService) InvalidateSettings() {
	cs.Invalidate(settingsCacheKey)
}

// Health pings redis with a short deadline
func (cs *CacheService) Health() error {
	ctx, cancel := context.WithTimeout(redisCtx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}
