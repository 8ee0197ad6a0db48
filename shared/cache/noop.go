package cache

import "context"

type noopCache struct{}

// NewNoop returns a cache that stores nothing. Every Get is a miss.
func NewNoop() RedisCache {
	return noopCache{}
}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

func (noopCache) Get(_ context.Context, _ string, _ any) error {
	return ErrMiss
}

func (noopCache) Delete(_ context.Context, _ string) error {
	return nil
}

func (noopCache) Clear(_ context.Context, _ string) error {
	return nil
}
