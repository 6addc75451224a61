package dto

import "time"

type VideoDTO struct {
	VideoID       string    `json:"videoId"`
	OwnerID       string    `json:"-"`
	OriginalName  string    `json:"originalName"`
	Format        string    `json:"format"`
	Status        string    `json:"status"`
	DurationSec   float64   `json:"durationSec"`
	Width         int64     `json:"width"`
	Height        int64     `json:"height"`
	SizeBytes     int64     `json:"sizeBytes"`
	HasThumbnail  bool      `json:"hasThumbnail"`
	HasTranscoded bool      `json:"hasTranscoded"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type VideoListResponse struct {
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Total    int64      `json:"total"`
	Items    []VideoDTO `json:"items"`
}

type TranscodeRequestDTO struct {
	Preset string `json:"preset"`
}

type UploadResponse struct {
	VideoID string `json:"videoId"`
	Status  string `json:"status"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
