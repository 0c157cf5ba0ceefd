package cache

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Service defines cache operations interface.
type Service interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Close() error
}

// GetOrLoad returns the cached value under key, or calls load, stores
// the result for ttl and returns it. Load errors are returned as-is;
// cache write errors are swallowed so a broken cache never fails a read.
func GetOrLoad[T any](ctx context.Context, c Service, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var out T
	if err := c.Get(ctx, key, &out); err == nil {
		return out, nil
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	_ = c.Set(ctx, key, out, ttl)
	return out, nil
}
