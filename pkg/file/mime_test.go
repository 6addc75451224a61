package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeFromExtension(t *testing.T) {
	assert.Equal(t, "video/mp4", MimeFromExtension("clip.mp4"))
	assert.Equal(t, "video/mp4", MimeFromExtension("CLIP.MP4"))
	assert.Equal(t, "video/webm", MimeFromExtension("a/b/clip.webm"))
	assert.Equal(t, "image/jpeg", MimeFromExtension("thumb.jpg"))
	assert.Equal(t, "application/octet-stream", MimeFromExtension("notes.txt"))
	assert.Equal(t, "application/octet-stream", MimeFromExtension("noext"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("clip.mp4"))
	assert.True(t, IsVideoFile("clip.MKV"))
	assert.False(t, IsVideoFile("thumb.jpg"))
	assert.False(t, IsVideoFile("clip"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "clip", BaseName("videos/alice/clip.mp4"))
	assert.Equal(t, "clip.backup", BaseName("clip.backup.mp4"))
	assert.Equal(t, "clip", BaseName("clip"))
}
