package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"video-service/internal/domain/repositories"
	filepkg "video-service/pkg/file"
)

// LocalStorage keeps objects as plain files under a managed root. Get returns
// the file handle itself, so delivery can seek for range requests.
type LocalStorage struct {
	basePath string
	logger   *zap.Logger
}

func NewLocalStorage(basePath string, logger *zap.Logger) *LocalStorage {
	return &LocalStorage{basePath: basePath, logger: logger}
}

func (l *LocalStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	// Write to a sibling temp file and rename, so a partial write is never
	// visible under the final key.
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".put-*")
	if err != nil {
		return fmt.Errorf("create temp object: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("publish object: %w", err)
	}
	return nil
}

func (l *LocalStorage) Get(ctx context.Context, key string) (*repositories.Object, error) {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repositories.ErrObjectNotFound
		}
		return nil, fmt.Errorf("open object: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat object: %w", err)
	}
	return &repositories.Object{
		Reader:      f,
		Size:        info.Size(),
		ContentType: filepkg.MimeFromExtension(fullPath),
	}, nil
}

func (l *LocalStorage) Delete(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
		if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
			l.logger.Warn("delete object failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (l *LocalStorage) Presign(ctx context.Context, key, downloadName string) (string, error) {
	return "", repositories.ErrPresignNotSupported
}

func (l *LocalStorage) Presigns() bool {
	return false
}
