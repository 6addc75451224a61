package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"video-service/internal/domain/dto"
)

// RedisListingCache caches list responses per owner with a short TTL. Every
// mutating pipeline event drops all of the owner's entries. Redis being down
// only costs the speedup; reads fall through to the repository.
type RedisListingCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisListingCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisListingCache {
	return &RedisListingCache{rdb: rdb, ttl: ttl, logger: logger}
}

func listKey(ownerID string, page, pageSize int) string {
	return fmt.Sprintf("videos:%s:%d:%d", ownerID, page, pageSize)
}

func (c *RedisListingCache) GetList(ctx context.Context, ownerID string, page, pageSize int) (*dto.VideoListResponse, bool) {
	raw, err := c.rdb.Get(ctx, listKey(ownerID, page, pageSize)).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache get failed", zap.Error(err))
		}
		return nil, false
	}
	var list dto.VideoListResponse
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		c.logger.Warn("cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return &list, true
}

func (c *RedisListingCache) SetList(ctx context.Context, ownerID string, page, pageSize int, list *dto.VideoListResponse) {
	raw, err := json.Marshal(list)
	if err != nil {
		c.logger.Warn("cache marshal failed", zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, listKey(ownerID, page, pageSize), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.Error(err))
	}
}

func (c *RedisListingCache) Invalidate(ctx context.Context, ownerID string) {
	pattern := fmt.Sprintf("videos:%s:*", ownerID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("cache invalidate failed", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("cache scan failed", zap.Error(err))
	}
}
