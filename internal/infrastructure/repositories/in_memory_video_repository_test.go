package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"video-service/internal/domain/entities"
	"video-service/internal/domain/repositories"
	"video-service/pkg/constants"
)

func seedVideo(t *testing.T, repo *InMemoryVideoRepository, ownerID, name string) *entities.Video {
	t.Helper()
	video := &entities.Video{
		OwnerID:      ownerID,
		OriginalName: name,
		StoredKey:    "videos/" + ownerID + "/" + name,
		Status:       constants.StatusUploaded,
	}
	require.NoError(t, repo.Create(context.Background(), video))
	return video
}

func TestCreateAndGet(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	video := seedVideo(t, repo, "alice", "clip.mp4")

	got, err := repo.Get(context.Background(), "alice", video.VideoID.String())
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", got.OriginalName)
	assert.Equal(t, constants.StatusUploaded, got.Status)
}

func TestGetScopedByOwner(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	video := seedVideo(t, repo, "alice", "clip.mp4")

	// Another owner sees not-found, indistinguishable from a missing id.
	_, err := repo.Get(context.Background(), "bob", video.VideoID.String())
	assert.ErrorIs(t, err, repositories.ErrVideoNotFound)
}

func TestListOrderAndPagination(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	ctx := context.Background()

	first := seedVideo(t, repo, "alice", "a.mp4")
	time.Sleep(2 * time.Millisecond)
	second := seedVideo(t, repo, "alice", "b.mp4")
	time.Sleep(2 * time.Millisecond)
	third := seedVideo(t, repo, "alice", "c.mp4")
	seedVideo(t, repo, "bob", "other.mp4")

	items, total, err := repo.List(ctx, "alice", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 2)
	assert.Equal(t, third.VideoID, items[0].VideoID)
	assert.Equal(t, second.VideoID, items[1].VideoID)

	items, _, err = repo.List(ctx, "alice", 2, 2)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, first.VideoID, items[0].VideoID)

	items, total, err = repo.List(ctx, "alice", 5, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, int64(3), total)
}

func TestUpdatePartialFields(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	ctx := context.Background()
	video := seedVideo(t, repo, "alice", "clip.mp4")

	err := repo.Update(ctx, "alice", video.VideoID.String(), map[string]any{"thumb_key": "thumbs/alice/x.jpg"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "alice", video.VideoID.String())
	require.NoError(t, err)
	assert.Equal(t, "thumbs/alice/x.jpg", got.ThumbKey)
	// Untouched fields survive a partial update.
	assert.Equal(t, "clip.mp4", got.OriginalName)
	assert.Equal(t, constants.StatusUploaded, got.Status)
}

func TestUpdateStatusIf(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	ctx := context.Background()
	video := seedVideo(t, repo, "alice", "clip.mp4")
	id := video.VideoID.String()

	ok, err := repo.UpdateStatusIf(ctx, "alice", id,
		[]string{constants.StatusUploaded, constants.StatusReady, constants.StatusFailed},
		constants.StatusTranscoding, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second gate attempt loses: the row is already transcoding.
	ok, err = repo.UpdateStatusIf(ctx, "alice", id,
		[]string{constants.StatusUploaded, constants.StatusReady, constants.StatusFailed},
		constants.StatusTranscoding, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.UpdateStatusIf(ctx, "alice", id,
		[]string{constants.StatusTranscoding}, constants.StatusReady,
		map[string]any{"transcoded_key": "transcoded/alice/x.mp4"})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, "alice", id)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusReady, got.Status)
	assert.Equal(t, "transcoded/alice/x.mp4", got.TranscodedKey)
}

func TestUpdateStatusIfMissingRow(t *testing.T) {
	repo := NewInMemoryVideoRepository()

	// A terminal write for a deleted video matches nothing and reports false
	// without an error.
	ok, err := repo.UpdateStatusIf(context.Background(), "alice", "gone",
		[]string{constants.StatusTranscoding}, constants.StatusReady, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	repo := NewInMemoryVideoRepository()
	ctx := context.Background()
	video := seedVideo(t, repo, "alice", "clip.mp4")
	id := video.VideoID.String()

	require.NoError(t, repo.Delete(ctx, "alice", id))
	_, err := repo.Get(ctx, "alice", id)
	assert.ErrorIs(t, err, repositories.ErrVideoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "alice", id), repositories.ErrVideoNotFound)
}
