package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kapilkaushal24/restaurant-management-api/entity"

	"github.com/go-redis/redis/v8"
)

// MenuCache is an optional Redis read-through cache for single menu
// item lookups. A nil *MenuCache is valid and disables caching, so
// deployments without Redis lose nothing but speed.
type MenuCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewMenuCache(redisURL string, ttl time.Duration) (*MenuCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &MenuCache{rdb: rdb, ttl: ttl}, nil
}

func itemKey(id uint) string {
	return fmt.Sprintf("menu:item:%d", id)
}

// GetItem returns (nil, nil) on a miss; cache trouble is reported as a
// miss too, the caller falls back to the store.
func (c *MenuCache) GetItem(ctx context.Context, id uint) (*entity.MenuItem, error) {
	if c == nil {
		return nil, nil
	}
	val, err := c.rdb.Get(ctx, itemKey(id)).Result()
	if err != nil {
		return nil, nil
	}
	var item entity.MenuItem
	if err := json.Unmarshal([]byte(val), &item); err != nil {
		return nil, nil
	}
	return &item, nil
}

func (c *MenuCache) SetItem(ctx context.Context, item *entity.MenuItem) {
	if c == nil {
		return
	}
	data, err := json.Marshal(item)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, itemKey(item.ID), data, c.ttl)
}

// InvalidateItem drops the cached copy after a mutation.
func (c *MenuCache) InvalidateItem(ctx context.Context, id uint) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, itemKey(id))
}
