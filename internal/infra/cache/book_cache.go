package cache

import (
	"context"
	"encoding/json"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	"bookstore/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const bookKeyPrefix = "bookstore:book:"

type redisBookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache returns a redis-backed cache, or a no-op cache when client is nil.
func NewBookCache(client *redis.Client, cfg *config.Config) repository.BookCache {
	if client == nil {
		return noopBookCache{}
	}

	ttl := config.DefaultBookCacheTTL
	if cfg != nil && cfg.Redis != nil && cfg.Redis.BookTTL > 0 {
		ttl = cfg.Redis.BookTTL
	}

	return &redisBookCache{client: client, ttl: ttl}
}

func bookKey(id uuid.UUID) string {
	return bookKeyPrefix + id.String()
}

// Get returns (nil, nil) on a miss.
func (c *redisBookCache) Get(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	payload, err := c.client.Get(ctx, bookKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get book")
	}

	var book entity.Book
	if err := json.Unmarshal(payload, &book); err != nil {
		return nil, errors.Wrap(err, "decode cached book")
	}

	return &book, nil
}

func (c *redisBookCache) Set(ctx context.Context, book *entity.Book) error {
	if book == nil {
		return nil
	}

	payload, err := json.Marshal(book)
	if err != nil {
		return errors.Wrap(err, "encode book")
	}

	if err := c.client.Set(ctx, bookKey(book.ID), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set book")
	}

	return nil
}

func (c *redisBookCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, bookKey(id)).Err(); err != nil {
		return errors.Wrap(err, "redis delete book")
	}

	return nil
}

type noopBookCache struct{}

func (noopBookCache) Get(context.Context, uuid.UUID) (*entity.Book, error) { return nil, nil }

func (noopBookCache) Set(context.Context, *entity.Book) error { return nil }

func (noopBookCache) Delete(context.Context, uuid.UUID) error { return nil }
