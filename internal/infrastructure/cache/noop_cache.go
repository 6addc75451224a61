package cache

import (
	"context"

	"video-service/internal/domain/dto"
)

// NoopListingCache satisfies the cache contract without caching anything.
// Used when Redis is not configured and in tests.
type NoopListingCache struct{}

func NewNoopListingCache() *NoopListingCache {
	return &NoopListingCache{}
}

func (NoopListingCache) GetList(ctx context.Context, ownerID string, page, pageSize int) (*dto.VideoListResponse, bool) {
	return nil, false
}

func (NoopListingCache) SetList(ctx context.Context, ownerID string, page, pageSize int, list *dto.VideoListResponse) {
}

func (NoopListingCache) Invalidate(ctx context.Context, ownerID string) {}
