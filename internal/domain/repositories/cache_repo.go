package repositories

import (
	"context"

	"video-service/internal/domain/dto"
)

// ListingCache is a read-through cache for list responses, keyed by owner.
// Entries expire on a short TTL and are invalidated on every mutating
// pipeline event. Cache trouble is never surfaced; callers fall through to
// the repository.
type ListingCache interface {
	GetList(ctx context.Context, ownerID string, page, pageSize int) (*dto.VideoListResponse, bool)
	SetList(ctx context.Context, ownerID string, page, pageSize int, list *dto.VideoListResponse)
	Invalidate(ctx context.Context, ownerID string)
}
