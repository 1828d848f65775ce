package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"chemical-leads-api/internal/models"
)

const keyPrefix = "catalog:search:"

type Options struct {
	URL string
	DB  int
	TTL time.Duration
}

// RedisCache stores search responses. A nil *RedisCache is valid and behaves
// as an always-missing cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis. It returns nil when no URL is configured
// or the server cannot be reached; searches then go straight to the store.
func NewRedisCache(ctx context.Context, opts Options) *RedisCache {
	if opts.URL == "" {
		zap.L().Info("search cache disabled: REDIS_URL not set")
		return nil
	}

	opt, err := redis.ParseURL(opts.URL)
	if err != nil {
		zap.L().Warn("failed to parse Redis URL", zap.Error(err))
		return nil
	}
	opt.DB = opts.DB

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("Redis connection failed, search cache disabled", zap.Error(err))
		_ = client.Close()
		return nil
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	zap.L().Info("Redis connected", zap.Int("db", opts.DB), zap.Duration("ttl", ttl))

	return NewWithClient(client, ttl)
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// GetSearchResults returns (nil, nil) on a miss.
func (r *RedisCache) GetSearchResults(ctx context.Context, key string) (*models.SearchResponse, error) {
	if !r.IsAvailable() {
		return nil, errors.New("redis client not available")
	}

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	var response models.SearchResponse
	if err := json.Unmarshal([]byte(val), &response); err != nil {
		return nil, errors.Wrap(err, "decode cached search")
	}
	return &response, nil
}

func (r *RedisCache) SetSearchResults(ctx context.Context, key string, response *models.SearchResponse) error {
	if !r.IsAvailable() {
		return errors.New("redis client not available")
	}

	data, err := json.Marshal(response)
	if err != nil {
		return errors.Wrap(err, "encode search")
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// GenerateSearchKey derives a key from every parameter that affects the
// result. Categories are sorted so their order does not matter.
func GenerateSearchKey(params models.SearchParams) string {
	cats := make([]string, len(params.Categories))
	for i, c := range params.Categories {
		cats[i] = string(c)
	}
	sort.Strings(cats)

	return fmt.Sprintf("%s%s:%q:c%s:p%d:s%d",
		keyPrefix, params.Field, strings.ToLower(params.Query), strings.Join(cats, ","), params.Page, params.PageSize)
}

func (r *RedisCache) Close() error {
	if !r.IsAvailable() {
		return nil
	}
	return r.client.Close()
}

func (r *RedisCache) IsAvailable() bool {
	return r != nil && r.client != nil
}

func (r *RedisCache) GetStats(ctx context.Context) map[string]interface{} {
	if !r.IsAvailable() {
		return map[string]interface{}{
			"status": "unavailable",
		}
	}

	keys, _ := r.client.Keys(ctx, keyPrefix+"*").Result()
	return map[string]interface{}{
		"status":      "connected",
		"ttl_seconds": int(r.ttl.Seconds()),
		"cached_keys": len(keys),
	}
}

// FlushCache removes cached searches only, leaving other keys in the database.
func (r *RedisCache) FlushCache(ctx context.Context) (int, error) {
	if !r.IsAvailable() {
		return 0, errors.New("redis client not available")
	}

	var removed int
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, errors.Wrap(err, "redis del")
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, errors.Wrap(err, "redis scan")
	}
	return removed, nil
}
