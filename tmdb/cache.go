package tmdb

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache 查询结果缓存，键为标题，值为查到的URL或文本
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

const cacheTTL = 24 * time.Hour

// ============== Redis缓存 ==============

type redisCache struct {
	client *redis.Client
}

// NewRedisCache 基于Redis的共享缓存，多实例部署时避免重复请求TMDB
func NewRedisCache(ctx context.Context, url string) (Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &redisCache{client: rdb}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

func (c *redisCache) Set(ctx context.Context, key string, value string) {
	c.client.Set(ctx, key, value, cacheTTL)
}

// ============== 进程内缓存 ==============

// memoryCache 未配置Redis时的进程内降级缓存，容量达到上限后整体清空
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
	maxSize int
}

func NewMemoryCache(maxSize int) Cache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &memoryCache{
		entries: make(map[string]string),
		maxSize: maxSize,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, ok := c.entries[key]
	return value, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.maxSize {
		c.entries = make(map[string]string)
	}
	c.entries[key] = value
}
