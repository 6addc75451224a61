package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscodeArgs(t *testing.T) {
	args := transcodeArgs("/tmp/in.mp4", "/tmp/out.mp4")

	// The delivery rendition is fixed: H.264 at 1280 wide, AAC audio, MP4
	// with the index up front.
	joined := ""
	for _, a := range args {
		joined += a + " "
	}
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-vf scale=1280:-2")
	assert.Contains(t, joined, "-c:a aac")
	assert.Contains(t, joined, "-movflags +faststart")
	assert.Contains(t, joined, "-f mp4")
	assert.Equal(t, "/tmp/out.mp4", args[len(args)-1])
}

func TestThumbnailOffset(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     float64
	}{
		{"long clip uses fixed offset", 10, 2},
		{"short clip starts at zero", 1.5, 0},
		{"unknown duration uses fixed offset", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ThumbnailOffset(tt.duration))
		})
	}
}
