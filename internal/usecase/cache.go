package usecase

import (
	"context"
	"time"
)

// Cache is the JSON cache the usecases read through. Implementations report a miss rather
// than an error when the backing store is down.
type Cache interface {
	Available() bool
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type noCache struct{}

func (noCache) Available() bool { return false }

func (noCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (noCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }

func (noCache) Delete(context.Context, string) error { return nil }

func (noCache) SetIfNotExists(context.Context, string, string, time.Duration) (bool, error) {
	return false, nil
}

func orNoCache(c Cache) Cache {
	if c == nil {
		return noCache{}
	}
	return c
}
