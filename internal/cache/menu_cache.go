package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bobapos/internal/config"
	"bobapos/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	menuItemsKey = "bobapos:menu:items"
	menuTTL      = 5 * time.Minute
)

var ErrCacheMiss = errors.New("cache miss")

// MenuCacheInterface is what the menu service needs from the cache layer.
type MenuCacheInterface interface {
	GetMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	SetMenuItems(ctx context.Context, items []domain.MenuItem) error
}

// RedisMenuCache keeps the menu board's hot read path off Postgres. The menu
// is reference data, so a short TTL is the only invalidation needed.
type RedisMenuCache struct {
	client *redis.Client
}

func NewRedisMenuCache(cfg config.RedisConfig) (*RedisMenuCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisMenuCache{client: client}, nil
}

func (c *RedisMenuCache) Close() error { return c.client.Close() }

func (c *RedisMenuCache) GetMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	data, err := c.client.Get(ctx, menuItemsKey).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read menu cache: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached menu: %w", err)
	}
	return items, nil
}

func (c *RedisMenuCache) SetMenuItems(ctx context.Context, items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu items: %w", err)
	}
	return c.client.Set(ctx, menuItemsKey, data, menuTTL).Err()
}
