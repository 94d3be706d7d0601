package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/example/smart-shop/internal/models"
)

const (
	latestKey = "products:latest"
	latestTTL = 5 * time.Minute
)

type ProductCache struct {
	client *redis.Client
}

func New(addr string) (*ProductCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Println("Successfully connected to Redis")

	return &ProductCache{client: client}, nil
}

func (c *ProductCache) GetLatest(ctx context.Context) ([]models.Product, error) {
	data, err := c.client.Get(ctx, latestKey).Bytes()
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductCache) SetLatest(ctx context.Context, products []models.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, latestKey, data, latestTTL).Err()
}

func (c *ProductCache) InvalidateLatest(ctx context.Context) error {
	return c.client.Del(ctx, latestKey).Err()
}

func (c *ProductCache) Close() error {
	return c.client.Close()
}
