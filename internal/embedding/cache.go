package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheTTL bounds how long a cached vector is served before the text is
// re-embedded.
const CacheTTL = 24 * time.Hour

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// Cached decorates a Provider with a Redis cache keyed by a hash of the
// input text. Cache failures degrade to a direct provider call; they are
// never fatal to a match request.
type Cached struct {
	provider Provider
	redis    *redis.Client
}

// NewCached wraps provider with a Redis-backed cache.
func NewCached(provider Provider, client *redis.Client) *Cached {
	return &Cached{provider: provider, redis: client}
}

// Embed returns the cached vector for text, embedding and storing it on a
// miss.
func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	key := CacheKey(text)

	raw, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var vec []float32
		if err := json.Unmarshal(raw, &vec); err == nil && len(vec) > 0 {
			return vec, nil
		}
		// Unreadable entry, fall through and overwrite it.
	} else if err != redis.Nil {
		log.Printf("[embedding] cache read failed: %v", err)
	}

	vec, err := c.provider.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(vec); err == nil {
		if err := c.redis.Set(ctx, key, raw, CacheTTL).Err(); err != nil {
			log.Printf("[embedding] cache write failed: %v", err)
		}
	}
	return vec, nil
}

// CacheKey derives the Redis key for a piece of text. Hashing keeps keys
// bounded regardless of how long the job description is.
func CacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + hex.EncodeToString(sum[:])
}
