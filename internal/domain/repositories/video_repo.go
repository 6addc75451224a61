package repositories

import (
	"context"
	"errors"

	"video-service/internal/domain/entities"
)

// ErrVideoNotFound is returned when the (owner, id) pair has no row. Another
// owner's video behaves identically, so existence never leaks across owners.
var ErrVideoNotFound = errors.New("video not found")

// ErrVideoExists is returned by Create when the id is already taken.
var ErrVideoExists = errors.New("video already exists")

type VideoRepository interface {
	Create(ctx context.Context, video *entities.Video) error
	Get(ctx context.Context, ownerID, videoID string) (*entities.Video, error)
	List(ctx context.Context, ownerID string, page, pageSize int) ([]entities.Video, int64, error)

	// Update applies a partial field set without clobbering untouched columns.
	Update(ctx context.Context, ownerID, videoID string, fields map[string]any) error

	// UpdateStatusIf is the compare-and-set gate: it moves status to `to`
	// (together with extra fields) only when the current status is one of
	// `from`, and reports whether a row was actually updated. The caller that
	// wins this transition owns the follow-up terminal write.
	UpdateStatusIf(ctx context.Context, ownerID, videoID string, from []string, to string, fields map[string]any) (bool, error)

	Delete(ctx context.Context, ownerID, videoID string) error
}
