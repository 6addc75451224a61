package constants

const (
	StatusUploaded    = "uploaded"
	StatusTranscoding = "transcoding"
	StatusReady       = "ready"
	StatusFailed      = "failed"
	StatusOK          = "ok"
)

const (
	VariantOriginal   = "original"
	VariantTranscoded = "transcoded"
	VariantThumbnail  = "thumbnail"
)

const Preset720p = "720p"
