package repositories

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by Get/Presign when the key has no object.
var ErrObjectNotFound = errors.New("storage: object not found")

// ErrPresignNotSupported is returned by backends that serve bytes directly.
var ErrPresignNotSupported = errors.New("storage: presigning not supported")

// Object is a readable, seekable handle onto stored bytes. Callers must
// Close it; remote backends may back it with a temp file removed on Close.
type Object struct {
	Reader      io.ReadSeekCloser
	Size        int64
	ContentType string
}

func (o *Object) Close() error {
	if o == nil || o.Reader == nil {
		return nil
	}
	return o.Reader.Close()
}

// StorageBackend stores opaque blobs under caller-chosen keys. Exactly one
// implementation is selected at startup; nothing branches on the backend
// per call.
type StorageBackend interface {
	// Put writes the full stream under key. Partial writes are never visible
	// to a subsequent Get.
	Put(ctx context.Context, key string, r io.Reader, contentType string) error

	Get(ctx context.Context, key string) (*Object, error)

	// Delete removes each key best-effort. Per-key failures are logged and
	// swallowed; Delete never fails.
	Delete(ctx context.Context, keys ...string)

	// Presign returns a short-lived URL for direct client access, with an
	// optional attachment filename hint.
	Presign(ctx context.Context, key, downloadName string) (string, error)

	// Presigns reports whether this backend issues redirect URLs instead of
	// streaming through the server.
	Presigns() bool
}
