package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"etalase/internal/models"
)

const (
	productKeyPrefix = "product:"
	productListKey   = "products:all"
	defaultTTL       = 5 * time.Minute
)

// ProductCache is a cache-aside layer over Redis for product reads. A nil
// *ProductCache (or one built from an empty address) is a no-op, so the
// service runs unchanged without Redis configured.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache connects to Redis and verifies the connection. An empty
// addr returns a disabled cache and no error.
func NewProductCache(addr, password string, db int) (*ProductCache, error) {
	if addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &ProductCache{client: client, ttl: defaultTTL}, nil
}

// Close releases the underlying connection.
func (c *ProductCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// GetProduct returns the cached product for id, or nil on a miss. Cache
// errors degrade to a miss.
func (c *ProductCache) GetProduct(ctx context.Context, id string) *models.Product {
	if c == nil {
		return nil
	}
	data, err := c.client.Get(ctx, productKeyPrefix+id).Bytes()
	if err != nil {
		return nil
	}
	var p models.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

// SetProduct stores a product under its id.
func (c *ProductCache) SetProduct(ctx context.Context, p *models.Product) {
	if c == nil || p == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.client.Set(ctx, productKeyPrefix+p.ID, data, c.ttl)
}

// GetList returns the cached full listing, or nil on a miss.
func (c *ProductCache) GetList(ctx context.Context) []models.Product {
	if c == nil {
		return nil
	}
	data, err := c.client.Get(ctx, productListKey).Bytes()
	if err != nil {
		return nil
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil
	}
	return products
}

// SetList stores the full listing.
func (c *ProductCache) SetList(ctx context.Context, products []models.Product) {
	if c == nil {
		return
	}
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.client.Set(ctx, productListKey, data, c.ttl)
}

// Invalidate drops the entry for id and the listing. Called after every
// successful write so stale reads are bounded by the write path, not the TTL.
func (c *ProductCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, productKeyPrefix+id, productListKey)
}
