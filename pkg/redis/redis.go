package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitrine/marketplace-backend/config"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

const blacklistPrefix = "blacklist:"

// TokenBlacklist records revoked access tokens until they would have expired.
type TokenBlacklist struct {
	client *redis.Client
}

// New connects to Redis and verifies the connection with a ping.
func New(cfg *config.RedisConfig) (*TokenBlacklist, error) {
	logger.Info("Initializing Redis connection", logger.Fields{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, logger.Fields{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established successfully")
	return &TokenBlacklist{client: client}, nil
}

// Close closes the Redis connection
func (b *TokenBlacklist) Close() error {
	logger.Info("Closing Redis connection")
	return b.client.Close()
}

// Revoke adds a token to the blacklist. A zero ttl keeps the entry forever.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	logger.Debug("Adding token to blacklist", logger.Fields{
		"ttl": ttl.String(),
	})

	if err := b.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		logger.Error("Failed to blacklist token", err)
		return err
	}

	logger.Debug("Token successfully blacklisted")
	return nil
}

// IsRevoked checks if a token is in the blacklist
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	val, err := b.client.Get(ctx, blacklistKey(token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Error("Failed to check token blacklist", err)
		return false, err
	}
	return val == "revoked", nil
}

// blacklistKey stores a digest so raw tokens never land in Redis.
func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistPrefix + hex.EncodeToString(sum[:])
}
