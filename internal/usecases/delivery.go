package usecases

import (
	"context"
	"errors"
	"path"

	"video-service/internal/domain/entities"
	"video-service/internal/domain/repositories"
	"video-service/internal/infrastructure/storage"
	"video-service/pkg/constants"
	pkgerrors "video-service/pkg/errors"
)

type DeliveryMode string

const (
	// ModeStream serves the bytes through this server with range support.
	ModeStream DeliveryMode = "stream"
	// ModeRedirect hands the client a presigned URL; the object store does
	// the byte transfer and the range handling.
	ModeRedirect DeliveryMode = "redirect"
)

// Deliverable is what the HTTP layer needs to answer a playback request:
// either an open object to stream or a URL to redirect to.
type Deliverable struct {
	Mode        DeliveryMode
	Object      *repositories.Object
	Filename    string
	RedirectURL string
}

// DeliveryResolver turns (video, variant) into a Deliverable. The mode is a
// property of the storage backend chosen at startup, never a per-request
// decision.
type DeliveryResolver struct {
	storage repositories.StorageBackend
}

func NewDeliveryResolver(store repositories.StorageBackend) *DeliveryResolver {
	return &DeliveryResolver{storage: store}
}

func (r *DeliveryResolver) Resolve(ctx context.Context, video *entities.Video, variant string, wantsDownload bool) (*Deliverable, error) {
	key := storage.KeyForVariant(variant, video.StoredKey, video.TranscodedKey, video.ThumbKey)
	if key == "" {
		if variant == constants.VariantTranscoded {
			return nil, pkgerrors.ErrTranscodePending(nil)
		}
		return nil, pkgerrors.ErrNotFound(nil)
	}
	filename := path.Base(key)

	if r.storage.Presigns() {
		downloadName := ""
		if wantsDownload {
			downloadName = filename
		}
		url, err := r.storage.Presign(ctx, key, downloadName)
		if err != nil {
			return nil, pkgerrors.ErrStorageUnavailable(err)
		}
		return &Deliverable{
			Mode:        ModeRedirect,
			Filename:    filename,
			RedirectURL: url,
		}, nil
	}

	obj, err := r.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrObjectNotFound) {
			return nil, pkgerrors.ErrNotFound(err)
		}
		return nil, pkgerrors.ErrStorageUnavailable(err)
	}
	return &Deliverable{
		Mode:     ModeStream,
		Object:   obj,
		Filename: filename,
	}, nil
}
