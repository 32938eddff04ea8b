// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"zora/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AIContextCacheClient holds expert-chat context for the advisory service.
	AIContextCacheClient *redis.Client
)

// InitRedis initializes the generic Redis cache client.
func InitRedis() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}

const revokedTokenPrefix = "auth:revoked:"

// RevokeAuthToken blacklists a token for the given duration. The hash of the
// token is stored, never the token itself.
func RevokeAuthToken(ctx context.Context, token string, ttl time.Duration) error {
	return GetCacheClient().Set(ctx, revokedTokenPrefix+HashToken(token), "1", ttl).Err()
}

// IsTokenRevoked reports whether a token has been blacklisted.
func IsTokenRevoked(ctx context.Context, token string) bool {
	n, err := GetCacheClient().Exists(ctx, revokedTokenPrefix+HashToken(token)).Result()
	return err == nil && n > 0
}

// InitAIContextCache initializes the Redis client used by the advisory service.
func InitAIContextCache() {
	AIContextCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAIContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AIContextCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (AI Context): %v", err)
	}
}

// GetAIContextCacheClient returns the Redis client for advisory chat context.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		InitAIContextCache()
	}
	return AIContextCacheClient
}
