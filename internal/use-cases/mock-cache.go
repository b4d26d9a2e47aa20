package use_cases

import (
	"context"
	"sync"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/abstraction/cache"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	json "github.com/goccy/go-json"
)

var _ cache.Cache = (*MockCache)(nil)

// MockCache ist ein In-Memory-Cache. Die Fn-Felder überschreiben das Standardverhalten.
type MockCache struct {
	GetFn func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetFn func(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError
	DelFn func(ctx context.Context, key string) *app_errors.AppError

	mu    sync.Mutex
	store map[string][]byte

	GetCalled int
	SetCalled int
	DelCalled int
}

func NewMockCache() *MockCache {
	return &MockCache{store: map[string][]byte{}}
}

func (m *MockCache) Get(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.mu.Lock()
	m.GetCalled++
	raw, ok := m.store[key]
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, key, dest)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, app_errors.NewInternal(err)
	}
	return true, nil
}

func (m *MockCache) Set(ctx context.Context, key string, val any, ttl time.Duration) *app_errors.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalled++

	if m.SetFn != nil {
		return m.SetFn(ctx, key, val, ttl)
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return app_errors.NewInternal(err)
	}
	m.store[key] = raw
	return nil
}

func (m *MockCache) Del(ctx context.Context, key string) *app_errors.AppError {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DelCalled++

	if m.DelFn != nil {
		return m.DelFn(ctx, key)
	}
	delete(m.store, key)
	return nil
}

func (m *MockCache) Exists(ctx context.Context, key string) (bool, *app_errors.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.store[key]
	return ok, nil
}

func (m *MockCache) Has(key string) bool {
	ok, _ := m.Exists(context.Background(), key)
	return ok
}
