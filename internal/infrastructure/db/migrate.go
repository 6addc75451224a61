package db

import (
	"gorm.io/gorm"

	"video-service/internal/domain/entities"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Video{},
	)
}
