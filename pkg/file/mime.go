package file

import (
	"path/filepath"
	"strings"
)

// MimeFromExtension maps a filename to a content type without touching the
// bytes. Unknown extensions fall back to application/octet-stream.
func MimeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	case ".mkv":
		return "video/x-matroska"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}

func IsVideoFile(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	videoExtensions := []string{".mp4", ".m4v", ".webm", ".mov", ".avi", ".mkv"}
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}

// BaseName returns the filename without directory or extension.
func BaseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
