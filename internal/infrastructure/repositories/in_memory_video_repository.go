package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"video-service/internal/domain/entities"
	"video-service/internal/domain/repositories"
)

// InMemoryVideoRepository mirrors the Postgres repository semantics without a
// database. Used by tests and local development.
type InMemoryVideoRepository struct {
	mu     sync.Mutex
	videos map[string]map[string]*entities.Video // ownerID -> videoID -> row
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{
		videos: make(map[string]map[string]*entities.Video),
	}
}

func (r *InMemoryVideoRepository) Create(ctx context.Context, video *entities.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if video.VideoID == uuid.Nil {
		video.VideoID = uuid.New()
	}
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	owned := r.videos[video.OwnerID]
	if owned == nil {
		owned = make(map[string]*entities.Video)
		r.videos[video.OwnerID] = owned
	}
	id := video.VideoID.String()
	if _, exists := owned[id]; exists {
		return repositories.ErrVideoExists
	}
	clone := *video
	owned[id] = &clone
	return nil
}

func (r *InMemoryVideoRepository) Get(ctx context.Context, ownerID, videoID string) (*entities.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[ownerID][videoID]
	if !ok {
		return nil, repositories.ErrVideoNotFound
	}
	clone := *video
	return &clone, nil
}

func (r *InMemoryVideoRepository) List(ctx context.Context, ownerID string, page, pageSize int) ([]entities.Video, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []entities.Video
	for _, v := range r.videos[ownerID] {
		all = append(all, *v)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= len(all) {
		return []entities.Video{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *InMemoryVideoRepository) Update(ctx context.Context, ownerID, videoID string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[ownerID][videoID]
	if !ok {
		return repositories.ErrVideoNotFound
	}
	applyFields(video, fields)
	video.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *InMemoryVideoRepository) UpdateStatusIf(ctx context.Context, ownerID, videoID string, from []string, to string, fields map[string]any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	video, ok := r.videos[ownerID][videoID]
	if !ok {
		return false, nil
	}
	matched := false
	for _, s := range from {
		if video.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	applyFields(video, fields)
	video.Status = to
	video.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *InMemoryVideoRepository) Delete(ctx context.Context, ownerID, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[ownerID][videoID]; !ok {
		return repositories.ErrVideoNotFound
	}
	delete(r.videos[ownerID], videoID)
	return nil
}

func applyFields(video *entities.Video, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "status":
			video.Status = v.(string)
		case "transcoded_key":
			video.TranscodedKey = v.(string)
		case "thumb_key":
			video.ThumbKey = v.(string)
		}
	}
}
