package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "records:cache:"

// RedisStore keeps the collection cache in Redis so it survives gateway
// restarts and can be shared by replicas. Update is a plain read-modify-write;
// mutations are serialized per deployment (one modal at a time on the
// dashboard), so no WATCH loop is needed.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key.String()).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return raw, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key Key, raw []byte) error {
	if err := r.client.Set(ctx, redisKeyPrefix+key.String(), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (r *RedisStore) Update(ctx context.Context, key Key, fn func(raw []byte) ([]byte, error)) error {
	raw, ok, err := r.Get(ctx, key)
	if err != nil || !ok {
		return err
	}
	next, err := fn(raw)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}

func (r *RedisStore) Invalidate(ctx context.Context, key Key) error {
	if err := r.client.Del(ctx, redisKeyPrefix+key.String()).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (r *RedisStore) InvalidateEntity(ctx context.Context, entity string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+entity).Err(); err != nil {
		return fmt.Errorf("cache invalidate entity: %w", err)
	}
	return r.InvalidateVariants(ctx, entity)
}

func (r *RedisStore) InvalidateVariants(ctx context.Context, entity string) error {
	iter := r.client.Scan(ctx, 0, redisKeyPrefix+entity+"?*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache invalidate variants: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	return nil
}
