// cache — кэш базовых (необогащённых) страниц трендовой ленты в Redis.
// Кэшируются только строки из reels: оверлей зрителя всегда читается свежим,
// поэтому TTL может быть коротким без риска отдать чужие флаги.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-reels-service/internal/models"
)

// FeedCache — минимальный контракт кэша страниц трендовой ленты.
type FeedCache interface {
	// GetPage возвращает закэшированную страницу и признак её наличия.
	GetPage(ctx context.Context, offset int64, limit int32) ([]models.Reel, bool, error)
	// SetPage сохраняет страницу с TTL из конфига.
	SetPage(ctx context.Context, offset int64, limit int32, items []models.Reel) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "reels:trending:".
func NewRedisCache(redisURL, prefix string, ttl time.Duration) (FeedCache, error) {
	if prefix == "" {
		prefix = "reels:trending:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(offset int64, limit int32) string {
	return fmt.Sprintf("%s%d:%d", c.prefix, offset, limit)
}

func (c *redisCache) GetPage(ctx context.Context, offset int64, limit int32) ([]models.Reel, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(offset, limit)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, err
	}

	var items []models.Reel
	if err := json.Unmarshal(raw, &items); err != nil {
		// Битый кэш трактуем как промах.
		return nil, false, nil
	}

	return items, true, nil
}

func (c *redisCache) SetPage(ctx context.Context, offset int64, limit int32, items []models.Reel) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(offset, limit), raw, c.ttl).Err()
}

func (c *redisCache) Close() error {
	return c.rdb.Close()
}

// noopCache — заглушка при отключённом Redis: всегда промах, запись — no-op.
type noopCache struct{}

// NewNoop возвращает кэш-заглушку (cfg.Redis.URL пустой).
func NewNoop() FeedCache { return noopCache{} }

func (noopCache) GetPage(context.Context, int64, int32) ([]models.Reel, bool, error) {
	return nil, false, nil
}

func (noopCache) SetPage(context.Context, int64, int32, []models.Reel) error { return nil }

func (noopCache) Close() error { return nil }
