package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"video-service/internal/domain/entities"
	"video-service/internal/domain/repositories"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entities.Video) error {
	if video.VideoID == uuid.Nil {
		video.VideoID = uuid.New()
	}
	now := time.Now().UTC()
	video.CreatedAt = now
	video.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(video).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return repositories.ErrVideoExists
	}
	return err
}

func (r *videoRepository) Get(ctx context.Context, ownerID, videoID string) (*entities.Video, error) {
	var video entities.Video
	err := r.db.WithContext(ctx).
		First(&video, "owner_id = ? AND video_id = ?", ownerID, videoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrVideoNotFound
		}
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context, ownerID string, page, pageSize int) ([]entities.Video, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []entities.Video
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *videoRepository) Update(ctx context.Context, ownerID, videoID string, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("owner_id = ? AND video_id = ?", ownerID, videoID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrVideoNotFound
	}
	return nil
}

// UpdateStatusIf performs the conditional status write in a single UPDATE so
// it stays correct across server processes sharing the database.
func (r *videoRepository) UpdateStatusIf(ctx context.Context, ownerID, videoID string, from []string, to string, fields map[string]any) (bool, error) {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	for k, v := range fields {
		updates[k] = v
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Video{}).
		Where("owner_id = ? AND video_id = ? AND status IN ?", ownerID, videoID, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *videoRepository) Delete(ctx context.Context, ownerID, videoID string) error {
	res := r.db.WithContext(ctx).
		Where("owner_id = ? AND video_id = ?", ownerID, videoID).
		Delete(&entities.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repositories.ErrVideoNotFound
	}
	return nil
}
