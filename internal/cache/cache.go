package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 定義快取與即時廣播操作介面
// 除了基礎的 Get、Set、Del 之外，另提供 Publish/Subscribe
// 作為新書事件的即時廣播通道（fire-and-forget，無送達保證）
// 方便測試時替換 FakeCache 實作
// ttl <= 0 表示不設過期

type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	Close() error
}

type FakeCache struct {
	GetFn       func(ctx context.Context, key string) *redis.StringCmd
	SetFn       func(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	DelFn       func(ctx context.Context, keys ...string) *redis.IntCmd
	PublishFn   func(ctx context.Context, channel string, message any) *redis.IntCmd
	SubscribeFn func(ctx context.Context, channels ...string) *redis.PubSub
	CloseFn     func() error
}

// Get 執行 Fake 設定或 panic
func (f *FakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.GetFn != nil {
		return f.GetFn(ctx, key)
	}
	panic("unexpected Get")
}

// Set 執行 Fake 設定或 panic
func (f *FakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if f.SetFn != nil {
		return f.SetFn(ctx, key, value, expiration)
	}
	panic("unexpected Set")
}

// Del 執行 Fake 設定或 panic
func (f *FakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.DelFn != nil {
		return f.DelFn(ctx, keys...)
	}
	panic("unexpected Del")
}

// Publish 執行 Fake 設定或 panic
func (f *FakeCache) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, channel, message)
	}
	panic("unexpected Publish")
}

// Subscribe 執行 Fake 設定或 panic
func (f *FakeCache) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	if f.SubscribeFn != nil {
		return f.SubscribeFn(ctx, channels...)
	}
	panic("unexpected Subscribe")
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
