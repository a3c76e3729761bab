package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(t *testing.T) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.NewSeeded()
	return New(store, newNoopLogger()), store
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	svc, _ := newService(t)

	created, err := svc.Create(context.Background(), models.DummyVideo{
		Title:       "Backhand Basics",
		Description: "Footwork and grip for a reliable backhand.",
		Category:    "technique",
		Duration:    "10:15",
		SourceURL:   "https://videos.bounceboom.com/backhand-basics.mp4",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, created.ID)
	assert.Zero(t, created.Views)
	assert.Zero(t, created.Likes)
	assert.WithinDuration(t, time.Now(), created.UploadDate, time.Minute)
}

func TestCreate_UnknownCategory(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), models.DummyVideo{
		Title:     "Orphan",
		Category:  "mystery",
		Duration:  "1:00",
		SourceURL: "https://videos.bounceboom.com/orphan.mp4",
	})
	assert.ErrorIs(t, err, memstore.ErrCategoryNotFound)
}

func TestList_SearchAndCategory(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "", "all")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	technique, err := svc.List(ctx, "", "technique")
	require.NoError(t, err)
	assert.Len(t, technique, 2)

	pickleball, err := svc.List(ctx, "pickleball", "safety")
	require.NoError(t, err)
	require.Len(t, pickleball, 1)
	assert.Equal(t, 2, pickleball[0].ID)
}

func TestUpdate_PatchPreservesUnsetFields(t *testing.T) {
	svc, _ := newService(t)

	updated, err := svc.Update(context.Background(), 1, models.VideoPatch{
		Title: strPtr("Proper Tennis Serve Technique, Part 1"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Proper Tennis Serve Technique, Part 1", updated.Title)
	assert.Equal(t, "technique", updated.Category)
	assert.Equal(t, 145, updated.Views, "views must survive the patch")
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Update(context.Background(), 99, models.VideoPatch{Title: strPtr("Ghost")})
	assert.ErrorIs(t, err, memstore.ErrVideoNotFound)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	before, err := svc.Get(ctx, 3)
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Customer Interaction Best Practices", removed.Title)
	assert.Equal(t, *before, *removed)

	_, err = svc.Get(ctx, 3)
	assert.ErrorIs(t, err, memstore.ErrVideoNotFound)
}

func TestRegisterView(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	video, err := svc.RegisterView(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 146, video.Views)

	video, err = svc.RegisterView(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 147, video.Views)
}

func TestSetLike_FloorsAtZero(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	liked, err := svc.SetLike(ctx, 1, true)
	require.NoError(t, err)
	baseline := liked.Likes

	unliked, err := svc.SetLike(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, baseline-1, unliked.Likes)

	for i := 0; i < baseline+5; i++ {
		unliked, err = svc.SetLike(ctx, 1, false)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, unliked.Likes, "likes must never go negative")
}

func TestCategories_CountsFollowCatalog(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)

	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		counts[c.ID] = c.VideoCount
	}
	assert.Equal(t, 2, counts["technique"])
	assert.Equal(t, 2, counts["safety"])
	assert.Equal(t, 1, counts["business"])

	_, err = svc.Delete(ctx, 1)
	require.NoError(t, err)

	categories, err = svc.Categories(ctx)
	require.NoError(t, err)
	for _, c := range categories {
		if c.ID == "technique" {
			assert.Equal(t, 1, c.VideoCount)
		}
	}
}

func TestAddComment(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	author := models.User{ID: 1, Name: "John Smith"}

	comment, err := svc.AddComment(ctx, 1, author, "  Great breakdown of the toss.  ")
	require.NoError(t, err)
	assert.Equal(t, "Great breakdown of the toss.", comment.Text)
	assert.Equal(t, "John Smith", comment.UserName)

	comments, err := svc.Comments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, comment.ID, comments[0].ID)
}

func TestAddComment_EmptyText(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddComment(context.Background(), 1, models.User{ID: 1, Name: "John Smith"}, "   ")
	assert.ErrorIs(t, err, ErrEmptyComment)
}

func TestAddComment_UnknownVideo(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddComment(context.Background(), 99, models.User{ID: 1, Name: "John Smith"}, "hello")
	assert.ErrorIs(t, err, memstore.ErrVideoNotFound)
}

func TestStats(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalUsers)
	assert.Equal(t, 5, stats.ActiveUsers)
	assert.Equal(t, 2, stats.TemporaryUsers)
	assert.Equal(t, 8, stats.TotalVideos)
	assert.Equal(t, 5, stats.TempAccessVideos)
	assert.Equal(t, 145+89+203+67+134+98+156+87, stats.TotalViews)
}

func TestStats_FollowsMutations(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Delete(ctx, 8)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.TotalVideos)
	assert.Equal(t, 4, stats.TempAccessVideos, "deleted video must leave the curated list")
}
