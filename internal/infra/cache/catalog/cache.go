package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

const (
	// DefaultTTL время жизни снимка каталога
	DefaultTTL = 5 * time.Minute

	keyPrefix = "rental:catalog:"
	scanCount = 100
)

// Cache кэширует снимки каталога в Redis поверх Provider
// Ошибки Redis не прерывают запрос: каталог берется напрямую из Provider.
type Cache struct {
	client   redis.UniversalClient
	provider Provider
	ttl      time.Duration
	logger   Logger
}

// NewCache создает кэш каталога
func NewCache(client redis.UniversalClient, provider Provider, ttl time.Duration, logger Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client:   client,
		provider: provider,
		ttl:      ttl,
		logger:   logger,
	}
}

// GetCatalog возвращает каталог из кэша или из Provider
func (c *Cache) GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error) {
	key := keyPrefix + filter.Key()

	if cars, ok := c.get(ctx, key); ok {
		c.logger.Debug("CatalogCache: hit key=%s, cars=%d", key, len(cars))
		return cars, nil
	}

	cars, err := c.provider.GetCatalog(ctx, filter)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("CatalogCache: miss key=%s, loaded %d cars", key, len(cars))

	c.set(ctx, key, cars)
	return cars, nil
}

// Invalidate удаляет все снимки каталога
func (c *Cache) Invalidate(ctx context.Context) error {
	keys := make([]string, 0)

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan: %v", ErrInvalidate, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrInvalidate, err)
	}

	c.logger.Info("CatalogCache: invalidated %d snapshots", len(keys))
	return nil
}

func (c *Cache) get(ctx context.Context, key string) ([]*domain.Car, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("CatalogCache: failed to read key=%s: %v", key, err)
		return nil, false
	}

	var cars []*domain.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		c.logger.Warn("CatalogCache: corrupted snapshot key=%s: %v", key, err)
		return nil, false
	}

	return cars, true
}

func (c *Cache) set(ctx context.Context, key string, cars []*domain.Car) {
	data, err := json.Marshal(cars)
	if err != nil {
		c.logger.Warn("CatalogCache: failed to encode snapshot key=%s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("CatalogCache: failed to write key=%s: %v", key, err)
	}
}
