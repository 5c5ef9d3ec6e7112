package smsspam

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "smsspam:archive:"

// NewRedisClient connects to redis and pings it
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error pinging the redis : %w", err)
	}
	return client, nil
}

// CachedSource keeps fetched archives in redis keyed by URL.
// Only bytes accepted by the validator are stored, and a stored entry it rejects is dropped
// and fetched again. Cache failures are logged and never fail a fetch.
type CachedSource struct {
	inner    Source
	client   redis.Cmdable
	ttl      time.Duration
	validate func(data []byte) error
}

// NewCachedSource wraps inner; a zero ttl keeps entries forever and a nil validate accepts anything
func NewCachedSource(inner Source, client redis.Cmdable, ttl time.Duration, validate func(data []byte) error) *CachedSource {
	if validate == nil {
		validate = func([]byte) error { return nil }
	}
	return &CachedSource{
		inner:    inner,
		client:   client,
		ttl:      ttl,
		validate: validate,
	}
}

func (c *CachedSource) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := cachePrefix + url
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		verr := c.validate(data)
		if verr == nil {
			return data, nil
		}
		log.Printf("archive cache entry rejected: %v", verr)
		if err := c.client.Del(ctx, key).Err(); err != nil {
			log.Printf("archive cache delete failed: %v", err)
		}
	case errors.Is(err, redis.Nil):
	default:
		log.Printf("archive cache read failed: %v", err)
	}

	data, err = c.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := c.validate(data); err != nil {
		log.Printf("archive not cached: %v", err)
		return data, nil
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("archive cache write failed: %v", err)
	}
	return data, nil
}
