package media

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
)

const (
	// ThumbnailOffsetSec is where the still frame is taken, unless the clip
	// is shorter than that.
	ThumbnailOffsetSec = 2.0
	thumbnailWidth     = 640
	thumbnailQuality   = 85
)

// FFThumbnailer extracts a full-size frame with ffmpeg and scales it down to
// a fixed-width JPEG, preserving aspect ratio.
type FFThumbnailer struct{}

func NewFFThumbnailer() *FFThumbnailer {
	return &FFThumbnailer{}
}

// ThumbnailOffset clamps the frame offset to the clip duration.
func ThumbnailOffset(durationSec float64) float64 {
	if durationSec > 0 && durationSec < ThumbnailOffsetSec {
		return 0
	}
	return ThumbnailOffsetSec
}

func thumbnailArgs(inputPath, framePath string, atSec float64) []string {
	return []string{
		"-ss", strconv.FormatFloat(atSec, 'f', -1, 64),
		"-i", inputPath,
		"-vframes", "1",
		"-y",
		framePath,
	}
}

func (t *FFThumbnailer) Thumbnail(ctx context.Context, inputPath string, atSec float64) (string, error) {
	dir := filepath.Dir(inputPath)
	framePath := filepath.Join(dir, "frame.png")
	defer os.Remove(framePath)

	cmd := exec.CommandContext(ctx, "ffmpeg", thumbnailArgs(inputPath, framePath, atSec)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("extract frame: %v: %s", err, out)
	}

	img, err := imaging.Open(framePath)
	if err != nil {
		return "", fmt.Errorf("open frame: %w", err)
	}
	scaled := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	thumbPath := filepath.Join(dir, "thumb.jpg")
	if err := imaging.Save(scaled, thumbPath, imaging.JPEGQuality(thumbnailQuality)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return thumbPath, nil
}
