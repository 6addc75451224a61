package usecases

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"video-service/internal/domain/dto"
	"video-service/internal/domain/entities"
	"video-service/internal/domain/repositories"
	"video-service/internal/infrastructure/media"
	"video-service/internal/infrastructure/queue"
	"video-service/internal/infrastructure/storage"
	"video-service/pkg/constants"
	pkgerrors "video-service/pkg/errors"
)

type Prober interface {
	Probe(ctx context.Context, localPath string) (*media.Info, error)
}

type Thumbnailer interface {
	Thumbnail(ctx context.Context, localPath string, atSec float64) (string, error)
}

type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) error
}

// VideoPipeline owns the video lifecycle. Every status transition goes
// through here; handlers never write to the repository directly.
type VideoPipeline interface {
	Ingest(ctx context.Context, ownerID string, src io.Reader, originalName, contentType string) (*entities.Video, error)
	Get(ctx context.Context, ownerID, videoID string) (*entities.Video, error)
	List(ctx context.Context, ownerID string, page, pageSize int) (*dto.VideoListResponse, error)
	RequestTranscode(ctx context.Context, ownerID, videoID, preset string) error
	Delete(ctx context.Context, ownerID, videoID string) error
	Close()
}

type videoPipeline struct {
	repo        repositories.VideoRepository
	storage     repositories.StorageBackend
	cache       repositories.ListingCache
	prober      Prober
	thumbnailer Thumbnailer
	transcoder  Transcoder
	pool        *queue.WorkerPool
	tempDir     string
	logger      *zap.Logger
}

func NewVideoPipeline(
	repo repositories.VideoRepository,
	store repositories.StorageBackend,
	listCache repositories.ListingCache,
	prober Prober,
	thumbnailer Thumbnailer,
	transcoder Transcoder,
	tempDir string,
	workers int,
	logger *zap.Logger,
) VideoPipeline {
	p := &videoPipeline{
		repo:        repo,
		storage:     store,
		cache:       listCache,
		prober:      prober,
		thumbnailer: thumbnailer,
		transcoder:  transcoder,
		tempDir:     tempDir,
		logger:      logger,
	}
	p.pool = queue.NewWorkerPool(workers, p.runTranscodeJob, logger)
	return p
}

func (p *videoPipeline) Close() {
	p.pool.Shutdown()
}

func (p *videoPipeline) Ingest(ctx context.Context, ownerID string, src io.Reader, originalName, contentType string) (*entities.Video, error) {
	videoID := uuid.New()

	// Spool the upload so ffprobe and the thumbnailer get a local path.
	spoolDir, err := os.MkdirTemp(p.tempDir, "ingest-")
	if err != nil {
		return nil, pkgerrors.ErrInternal(err)
	}
	defer os.RemoveAll(spoolDir)

	localPath := filepath.Join(spoolDir, filepath.Base(originalName))
	sizeBytes, err := spoolToFile(localPath, src)
	if err != nil {
		return nil, pkgerrors.ErrInternal(err)
	}

	storedKey := storage.OriginalKey(ownerID, videoID.String(), originalName)
	if err := p.putFromFile(ctx, storedKey, localPath, contentType); err != nil {
		return nil, pkgerrors.ErrStorageUnavailable(err)
	}

	info, err := p.prober.Probe(ctx, localPath)
	if err != nil {
		p.storage.Delete(ctx, storedKey)
		if errors.Is(err, media.ErrUnreadableMedia) {
			return nil, pkgerrors.ErrInvalidMedia(err)
		}
		return nil, pkgerrors.ErrInternal(err)
	}

	// Thumbnailing is best-effort: a clip without a thumbnail is still a clip.
	thumbKey := ""
	thumbPath, err := p.thumbnailer.Thumbnail(ctx, localPath, media.ThumbnailOffset(info.DurationSec))
	if err != nil {
		p.logger.Warn("thumbnail generation failed",
			zap.String("videoId", videoID.String()), zap.Error(err))
	} else {
		key := storage.ThumbnailKey(ownerID, videoID.String())
		if err := p.putFromFile(ctx, key, thumbPath, "image/jpeg"); err != nil {
			p.logger.Warn("thumbnail upload failed",
				zap.String("videoId", videoID.String()), zap.Error(err))
		} else {
			thumbKey = key
		}
	}

	video := &entities.Video{
		VideoID:      videoID,
		OwnerID:      ownerID,
		OriginalName: filepath.Base(originalName),
		StoredKey:    storedKey,
		ThumbKey:     thumbKey,
		Format:       info.Format,
		Status:       constants.StatusUploaded,
		DurationSec:  info.DurationSec,
		Width:        info.Width,
		Height:       info.Height,
		SizeBytes:    sizeBytes,
	}
	if err := p.repo.Create(ctx, video); err != nil {
		p.storage.Delete(ctx, storedKey, thumbKey)
		return nil, pkgerrors.ErrInternal(err)
	}

	p.cache.Invalidate(ctx, ownerID)
	p.logger.Info("video ingested",
		zap.String("videoId", videoID.String()),
		zap.String("owner", ownerID),
		zap.Float64("durationSec", info.DurationSec))
	return video, nil
}

func (p *videoPipeline) Get(ctx context.Context, ownerID, videoID string) (*entities.Video, error) {
	video, err := p.repo.Get(ctx, ownerID, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return nil, pkgerrors.ErrNotFound(err)
		}
		return nil, pkgerrors.ErrInternal(err)
	}
	return video, nil
}

func (p *videoPipeline) List(ctx context.Context, ownerID string, page, pageSize int) (*dto.VideoListResponse, error) {
	if cached, ok := p.cache.GetList(ctx, ownerID, page, pageSize); ok {
		return cached, nil
	}

	videos, total, err := p.repo.List(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, pkgerrors.ErrInternal(err)
	}

	items := make([]dto.VideoDTO, 0, len(videos))
	for i := range videos {
		items = append(items, dto.FromEntity(&videos[i]))
	}
	list := &dto.VideoListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Items:    items,
	}
	p.cache.SetList(ctx, ownerID, page, pageSize, list)
	return list, nil
}

func (p *videoPipeline) RequestTranscode(ctx context.Context, ownerID, videoID, preset string) error {
	if preset != constants.Preset720p {
		return pkgerrors.ErrUnsupportedPreset(fmt.Errorf("preset %q", preset))
	}

	video, err := p.repo.Get(ctx, ownerID, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return pkgerrors.ErrNotFound(err)
		}
		return pkgerrors.ErrInternal(err)
	}
	if video.Status == constants.StatusTranscoding {
		return pkgerrors.ErrConflict(nil)
	}

	// The conditional write is the concurrency gate: of two concurrent
	// requests, exactly one flips the row to transcoding.
	ok, err := p.repo.UpdateStatusIf(ctx, ownerID, videoID,
		[]string{constants.StatusUploaded, constants.StatusReady, constants.StatusFailed},
		constants.StatusTranscoding, nil)
	if err != nil {
		return pkgerrors.ErrInternal(err)
	}
	if !ok {
		return pkgerrors.ErrConflict(nil)
	}

	p.cache.Invalidate(ctx, ownerID)
	p.pool.Submit(queue.Job{
		OwnerID:      ownerID,
		VideoID:      videoID,
		OriginalName: video.OriginalName,
		StoredKey:    video.StoredKey,
		Preset:       preset,
	})
	return nil
}

// runTranscodeJob executes on a pool worker. Only the job that won the
// status gate reaches this point, so its terminal write is the only one for
// this transition. A terminal write that matches no row means the video was
// deleted mid-flight and the result is discarded.
func (p *videoPipeline) runTranscodeJob(ctx context.Context, job queue.Job) error {
	workDir, err := os.MkdirTemp(p.tempDir, "transcode-")
	if err != nil {
		p.markFailed(ctx, job)
		return err
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input"+filepath.Ext(job.OriginalName))
	if err := p.fetchToFile(ctx, job.StoredKey, inputPath); err != nil {
		p.markFailed(ctx, job)
		return err
	}

	outputPath := filepath.Join(workDir, "output.mp4")
	if err := p.transcoder.Transcode(ctx, inputPath, outputPath); err != nil {
		p.markFailed(ctx, job)
		return err
	}

	transcodedKey := storage.TranscodedKey(job.OwnerID, job.VideoID, job.OriginalName, job.Preset)
	if err := p.putFromFile(ctx, transcodedKey, outputPath, "video/mp4"); err != nil {
		p.markFailed(ctx, job)
		return err
	}

	ok, err := p.repo.UpdateStatusIf(ctx, job.OwnerID, job.VideoID,
		[]string{constants.StatusTranscoding}, constants.StatusReady,
		map[string]any{"transcoded_key": transcodedKey})
	if err != nil {
		return err
	}
	if !ok {
		// Deleted while transcoding: drop the result, keep storage clean.
		p.logger.Info("video gone before transcode completion",
			zap.String("videoId", job.VideoID))
		p.storage.Delete(ctx, transcodedKey)
		return nil
	}

	p.cache.Invalidate(ctx, job.OwnerID)
	return nil
}

// markFailed flips transcoding to failed without touching transcodedKey, so
// a delivery copy from an earlier successful run stays available.
func (p *videoPipeline) markFailed(ctx context.Context, job queue.Job) {
	ok, err := p.repo.UpdateStatusIf(ctx, job.OwnerID, job.VideoID,
		[]string{constants.StatusTranscoding}, constants.StatusFailed, nil)
	if err != nil {
		p.logger.Error("failed-status write failed",
			zap.String("videoId", job.VideoID), zap.Error(err))
		return
	}
	if ok {
		p.cache.Invalidate(ctx, job.OwnerID)
	}
}

func (p *videoPipeline) Delete(ctx context.Context, ownerID, videoID string) error {
	video, err := p.repo.Get(ctx, ownerID, videoID)
	if err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return pkgerrors.ErrNotFound(err)
		}
		return pkgerrors.ErrInternal(err)
	}

	// Storage cleanup is best-effort and must not block row deletion.
	p.storage.Delete(ctx, video.StoredKey, video.ThumbKey, video.TranscodedKey)

	if err := p.repo.Delete(ctx, ownerID, videoID); err != nil {
		if errors.Is(err, repositories.ErrVideoNotFound) {
			return pkgerrors.ErrNotFound(err)
		}
		return pkgerrors.ErrInternal(err)
	}

	p.cache.Invalidate(ctx, ownerID)
	p.logger.Info("video deleted", zap.String("videoId", videoID), zap.String("owner", ownerID))
	return nil
}

func (p *videoPipeline) putFromFile(ctx context.Context, key, localPath, contentType string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.storage.Put(ctx, key, f, contentType)
}

func (p *videoPipeline) fetchToFile(ctx context.Context, key, localPath string) error {
	obj, err := p.storage.Get(ctx, key)
	if err != nil {
		return err
	}
	defer obj.Close()
	_, err = spoolToFile(localPath, obj.Reader)
	return err
}

func spoolToFile(localPath string, src io.Reader) (int64, error) {
	f, err := os.Create(localPath)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(f, src)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(localPath)
		return 0, err
	}
	return n, nil
}
