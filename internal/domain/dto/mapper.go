package dto

import "video-service/internal/domain/entities"

func FromEntity(v *entities.Video) VideoDTO {
	return VideoDTO{
		VideoID:       v.VideoID.String(),
		OwnerID:       v.OwnerID,
		OriginalName:  v.OriginalName,
		Format:        v.Format,
		Status:        v.Status,
		DurationSec:   v.DurationSec,
		Width:         v.Width,
		Height:        v.Height,
		SizeBytes:     v.SizeBytes,
		HasThumbnail:  v.ThumbKey != "",
		HasTranscoded: v.TranscodedKey != "",
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
