package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrUnreadableMedia means ffprobe could not parse the file as a video.
var ErrUnreadableMedia = errors.New("media: unreadable file")

// Info is what the pipeline needs from a probe: enough to fill the metadata
// row and to pick a thumbnail offset.
type Info struct {
	DurationSec float64
	Width       int64
	Height      int64
	Format      string
}

type ffprobeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int64  `json:"width"`
		Height    int64  `json:"height"`
	} `json:"streams"`
	Format struct {
		FormatName string `json:"format_name"`
		Duration   string `json:"duration"`
	} `json:"format"`
}

// FFProber shells out to ffprobe for container and stream metadata.
type FFProber struct{}

func NewFFProber() *FFProber {
	return &FFProber{}
}

func probeArgs(localPath string) []string {
	return []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		localPath,
	}
}

func (p *FFProber) Probe(ctx context.Context, localPath string) (*Info, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", probeArgs(localPath)...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableMedia, err)
	}
	return parseProbeOutput(out)
}

func parseProbeOutput(out []byte) (*Info, error) {
	var parsed ffprobeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableMedia, err)
	}

	info := &Info{Format: parsed.Format.FormatName}
	if parsed.Format.Duration != "" {
		if d, err := strconv.ParseFloat(parsed.Format.Duration, 64); err == nil {
			info.DurationSec = d
		}
	}

	found := false
	for _, stream := range parsed.Streams {
		if stream.CodecType == "video" {
			info.Width = stream.Width
			info.Height = stream.Height
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no video stream", ErrUnreadableMedia)
	}
	return info, nil
}
