package media

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrTranscodeTimeout marks a job that exceeded its wall-clock bound. It is
// handled exactly like any other transcoder failure.
var ErrTranscodeTimeout = errors.New("media: transcode timed out")

// FFTranscoder produces the single supported delivery rendition: 720p-class
// H.264/AAC MP4 with the moov atom up front so browsers can start playback
// before the download finishes.
type FFTranscoder struct {
	timeout time.Duration
}

func NewFFTranscoder(timeout time.Duration) *FFTranscoder {
	return &FFTranscoder{timeout: timeout}
}

func transcodeArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-c:v", "libx264",
		"-preset", "fast",
		"-crf", "23",
		"-vf", "scale=1280:-2",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		"-f", "mp4",
		"-y",
		outputPath,
	}
}

func (t *FFTranscoder) Transcode(ctx context.Context, inputPath, outputPath string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ffmpeg", transcodeArgs(inputPath, outputPath)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w after %s", ErrTranscodeTimeout, t.timeout)
		}
		return fmt.Errorf("ffmpeg failed: %v: %s", err, out)
	}
	return nil
}
