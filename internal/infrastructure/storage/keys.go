package storage

import (
	"fmt"
	"path"

	"video-service/pkg/constants"
	filepkg "video-service/pkg/file"
)

// Key layout is decided here and nowhere else. Call sites name a variant;
// they never inspect or build key prefixes themselves.
//
//	videos/<owner>/<id>/<original name>
//	transcoded/<owner>/<id>/<base>-<preset>.mp4
//	thumbs/<owner>/<id>.jpg

func OriginalKey(ownerID, videoID, originalName string) string {
	return path.Join("videos", ownerID, videoID, path.Base(originalName))
}

// TranscodedKey is deterministic per (video, preset), so a successful
// re-transcode overwrites the previous delivery copy in place.
func TranscodedKey(ownerID, videoID, originalName, preset string) string {
	name := fmt.Sprintf("%s-%s.mp4", filepkg.BaseName(originalName), preset)
	return path.Join("transcoded", ownerID, videoID, name)
}

func ThumbnailKey(ownerID, videoID string) string {
	return path.Join("thumbs", ownerID, videoID+".jpg")
}

// KeyForVariant resolves a variant tag against a video's stored keys. An
// empty result means the variant has not been produced yet.
func KeyForVariant(variant, storedKey, transcodedKey, thumbKey string) string {
	switch variant {
	case constants.VariantTranscoded:
		return transcodedKey
	case constants.VariantThumbnail:
		return thumbKey
	default:
		return storedKey
	}
}
