package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProbeOutput(t *testing.T) {
	out := []byte(`{
		"streams": [
			{"codec_type": "audio"},
			{"codec_type": "video", "width": 640, "height": 360}
		],
		"format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "10.05"}
	}`)

	info, err := parseProbeOutput(out)
	require.NoError(t, err)
	assert.InDelta(t, 10.05, info.DurationSec, 0.001)
	assert.Equal(t, int64(640), info.Width)
	assert.Equal(t, int64(360), info.Height)
	assert.Equal(t, "mov,mp4,m4a,3gp,3g2,mj2", info.Format)
}

func TestParseProbeOutputNoVideoStream(t *testing.T) {
	out := []byte(`{
		"streams": [{"codec_type": "audio"}],
		"format": {"format_name": "mp3", "duration": "180.0"}
	}`)

	_, err := parseProbeOutput(out)
	assert.ErrorIs(t, err, ErrUnreadableMedia)
}

func TestParseProbeOutputGarbage(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json at all"))
	assert.ErrorIs(t, err, ErrUnreadableMedia)
}

func TestParseProbeOutputMissingDuration(t *testing.T) {
	out := []byte(`{
		"streams": [{"codec_type": "video", "width": 1280, "height": 720}],
		"format": {"format_name": "matroska,webm"}
	}`)

	info, err := parseProbeOutput(out)
	require.NoError(t, err)
	assert.Zero(t, info.DurationSec)
}

func TestProbeArgs(t *testing.T) {
	args := probeArgs("/tmp/in.mp4")
	assert.Contains(t, args, "-show_format")
	assert.Contains(t, args, "-show_streams")
	assert.Equal(t, "/tmp/in.mp4", args[len(args)-1])
}
