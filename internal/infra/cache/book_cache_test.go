package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *redisBookCache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr(), BookTTL: ttl}}
	c, ok := NewBookCache(client, cfg).(*redisBookCache)
	require.True(t, ok)

	return mr, c
}

func sampleBook() *entity.Book {
	return &entity.Book{
		ID:          uuid.New(),
		Title:       "Dune",
		Author:      "Frank Herbert",
		Price:       9.99,
		Description: "Spice",
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRedisBookCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t, time.Minute)
	book := sampleBook()

	got, err := c.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "miss before set")

	require.NoError(t, c.Set(ctx, book))
	assert.True(t, mr.Exists(bookKey(book.ID)))
	assert.Equal(t, time.Minute, mr.TTL(bookKey(book.ID)))

	got, err = c.Get(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, book.Title, got.Title)
	assert.Equal(t, book.Price, got.Price)
	assert.True(t, book.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, c.Delete(ctx, book.ID))
	got, err = c.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisBookCache_Expiry(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t, time.Second)
	book := sampleBook()

	require.NoError(t, c.Set(ctx, book))
	mr.FastForward(2 * time.Second)

	got, err := c.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisBookCache_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t, time.Minute)
	id := uuid.New()

	require.NoError(t, mr.Set(bookKey(id), "{not json"))

	_, err := c.Get(ctx, id)
	assert.Error(t, err)
}

func TestRedisBookCache_ServerDown(t *testing.T) {
	ctx := context.Background()
	mr, c := newTestCache(t, time.Minute)
	mr.Close()

	_, err := c.Get(ctx, uuid.New())
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, sampleBook()))
}

func TestNewBookCache_DefaultTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, ok := NewBookCache(client, &config.Config{}).(*redisBookCache)
	require.True(t, ok)
	assert.Equal(t, config.DefaultBookCacheTTL, c.ttl)
}

func TestNoopBookCache(t *testing.T) {
	ctx := context.Background()
	c := NewBookCache(nil, &config.Config{})

	require.NoError(t, c.Set(ctx, sampleBook()))
	got, err := c.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Delete(ctx, uuid.New()))
}

func TestNewRedisClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("disabled without address", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		client, err := NewRedisClient(Params{Lifecycle: lc, Config: &config.Config{}, Logger: logger})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("pings on start", func(t *testing.T) {
		mr := miniredis.RunT(t)
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}}

		client, err := NewRedisClient(Params{Lifecycle: lc, Config: cfg, Logger: logger})
		require.NoError(t, err)
		require.NotNil(t, client)

		lc.RequireStart()
		lc.RequireStop()
	})
}
