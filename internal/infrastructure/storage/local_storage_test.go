package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"video-service/internal/domain/repositories"
)

func newLocalStorage(t *testing.T) *LocalStorage {
	t.Helper()
	return NewLocalStorage(t.TempDir(), zap.NewNop())
}

func TestLocalPutGetRoundtrip(t *testing.T) {
	ls := newLocalStorage(t)
	ctx := context.Background()

	err := ls.Put(ctx, "videos/alice/v1/clip.mp4", strings.NewReader("some video bytes"), "video/mp4")
	require.NoError(t, err)

	obj, err := ls.Get(ctx, "videos/alice/v1/clip.mp4")
	require.NoError(t, err)
	defer obj.Close()

	assert.Equal(t, int64(len("some video bytes")), obj.Size)
	assert.Equal(t, "video/mp4", obj.ContentType)

	data, err := io.ReadAll(obj.Reader)
	require.NoError(t, err)
	assert.Equal(t, "some video bytes", string(data))
}

func TestLocalGetIsSeekable(t *testing.T) {
	ls := newLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, ls.Put(ctx, "k", strings.NewReader("0123456789"), "video/mp4"))

	obj, err := ls.Get(ctx, "k")
	require.NoError(t, err)
	defer obj.Close()

	_, err = obj.Reader.Seek(4, io.SeekStart)
	require.NoError(t, err)
	rest, err := io.ReadAll(obj.Reader)
	require.NoError(t, err)
	assert.Equal(t, "456789", string(rest))
}

func TestLocalGetMissing(t *testing.T) {
	ls := newLocalStorage(t)
	_, err := ls.Get(context.Background(), "videos/nobody/none.mp4")
	assert.ErrorIs(t, err, repositories.ErrObjectNotFound)
}

func TestLocalPutLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, zap.NewNop())
	require.NoError(t, ls.Put(context.Background(), "videos/a/clip.mp4", strings.NewReader("x"), "video/mp4"))

	entries, err := os.ReadDir(filepath.Join(dir, "videos", "a"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clip.mp4", entries[0].Name())
}

func TestLocalDeleteBestEffort(t *testing.T) {
	ls := newLocalStorage(t)
	ctx := context.Background()

	require.NoError(t, ls.Put(ctx, "a", strings.NewReader("x"), "video/mp4"))

	// Missing and empty keys must not blow up the batch.
	ls.Delete(ctx, "a", "missing-key", "")

	_, err := ls.Get(ctx, "a")
	assert.ErrorIs(t, err, repositories.ErrObjectNotFound)
}

func TestLocalPresignUnsupported(t *testing.T) {
	ls := newLocalStorage(t)
	assert.False(t, ls.Presigns())
	_, err := ls.Presign(context.Background(), "a", "")
	assert.ErrorIs(t, err, repositories.ErrPresignNotSupported)
}
