package entities

import (
	"time"

	"github.com/google/uuid"
)

// Video is the one durable record per uploaded clip. Rows are keyed by
// (owner_id, video_id); every read and write is scoped by owner.
type Video struct {
	VideoID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       string    `gorm:"type:varchar(255);primaryKey"`
	OriginalName  string    `gorm:"type:varchar(255);not null"`
	StoredKey     string    `gorm:"type:varchar(500);not null"`
	ThumbKey      string    `gorm:"type:varchar(500)"`
	TranscodedKey string    `gorm:"type:varchar(500)"`
	Format        string    `gorm:"type:varchar(100)"`
	Status        string    `gorm:"type:varchar(50);not null"`
	DurationSec   float64
	Width         int64
	Height        int64
	SizeBytes     int64
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}
