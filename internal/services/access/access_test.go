package access

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

func TestIsExpired(t *testing.T) {
	now, err := time.Parse("2006-01-02", "2024-01-26")
	require.NoError(t, err)
	expiresAt, err := time.Parse("2006-01-02", "2024-01-25")
	require.NoError(t, err)

	tests := []struct {
		name string
		user models.User
		want bool
	}{
		{
			name: "employee never expires",
			user: models.User{Role: models.RoleEmployee},
			want: false,
		},
		{
			name: "administrator never expires",
			user: models.User{Role: models.RoleAdministrator},
			want: false,
		},
		{
			name: "temporary past expiration",
			user: models.User{Role: models.RoleTemporary, ExpiresAt: &expiresAt},
			want: true,
		},
		{
			name: "temporary before expiration",
			user: func() models.User {
				future := now.AddDate(0, 0, 3)
				return models.User{Role: models.RoleTemporary, ExpiresAt: &future}
			}(),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExpired(tt.user, now))
		})
	}
}

func TestGetAccessStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// Посевные временные пользователи истекли в январе 2024.
	status, err := svc.GetAccessStatus(ctx, "temp_sarah")
	require.NoError(t, err)
	assert.Equal(t, StatusExpired, status)

	status, err = svc.GetAccessStatus(ctx, "john_coach")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	_, err = svc.GetAccessStatus(ctx, "nobody")
	assert.ErrorIs(t, err, memstore.ErrUserNotFound)
}

func TestEffectiveCatalog_EmployeeSeesEverything(t *testing.T) {
	svc, _ := newService(t)

	videos, err := svc.EffectiveCatalog(context.Background(), models.User{Role: models.RoleEmployee}, "all")
	require.NoError(t, err)
	assert.Len(t, videos, 8)
}

func TestEffectiveCatalog_CategoryFilter(t *testing.T) {
	svc, _ := newService(t)

	videos, err := svc.EffectiveCatalog(context.Background(), models.User{Role: models.RoleAdministrator}, "technique")
	require.NoError(t, err)
	require.Len(t, videos, 2)
	for _, v := range videos {
		assert.Equal(t, "technique", v.Category)
	}
}

func TestEffectiveCatalog_TemporarySeesOnlySelection(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	// Каталог из восьми видео, в кураторском списке ровно три.
	require.NoError(t, store.ReplaceTempSelection(ctx, []int{1, 2, 4}))

	videos, err := svc.EffectiveCatalog(ctx, models.User{Role: models.RoleTemporary}, "all")
	require.NoError(t, err)
	require.Len(t, videos, 3)
	assert.Equal(t, []int{videos[0].ID, videos[1].ID, videos[2].ID}, []int{1, 2, 4})

	// Фильтр по категории дополнительно сужает список.
	videos, err = svc.EffectiveCatalog(ctx, models.User{Role: models.RoleTemporary}, "safety")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, 2, videos[0].ID)
}

func TestEffectiveCatalog_TemporaryEmptySelection(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceTempSelection(ctx, []int{}))

	videos, err := svc.EffectiveCatalog(ctx, models.User{Role: models.RoleTemporary}, "all")
	require.NoError(t, err)
	assert.Empty(t, videos)
}

func TestEffectiveCatalog_NeverExceedsLimit(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	// Кураторский список заполнен до лимита.
	require.NoError(t, store.ReplaceTempSelection(ctx, []int{1, 2, 4, 6, 8}))

	videos, err := svc.EffectiveCatalog(ctx, models.User{Role: models.RoleTemporary}, "all")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(videos), MaxTempVideos)
}

func TestToggle_AddBeyondLimitFails(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	// В посевных данных выбрано пять видео — лимит исчерпан.
	before, err := svc.Selection(ctx)
	require.NoError(t, err)
	require.Len(t, before, MaxTempVideos)

	_, err = svc.Toggle(ctx, 3, true)
	assert.ErrorIs(t, err, ErrSelectionLimit)

	after, err := svc.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "selection must stay unchanged after rejected add")
}

func TestToggle_RemoveAlwaysSucceeds(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	selection, err := svc.Selection(ctx)
	require.NoError(t, err)

	for _, id := range selection {
		_, err = svc.Toggle(ctx, id, false)
		require.NoError(t, err)
	}

	// Удаление последнего видео разрешено, пустой список — не ошибка.
	final, err := svc.Selection(ctx)
	require.NoError(t, err)
	assert.Empty(t, final)
}

func TestToggle_AddIsIdempotent(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceTempSelection(ctx, []int{1, 2}))

	updated, err := svc.Toggle(ctx, 1, true)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, updated)
}

func TestReplace_WithinLimit(t *testing.T) {
	svc, _ := newService(t)

	updated, err := svc.Replace(context.Background(), []int{1, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, updated)
}

func TestReplace_BeyondLimitFails(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	before, err := svc.Selection(ctx)
	require.NoError(t, err)

	_, err = svc.Replace(ctx, []int{1, 2, 3, 4, 5, 6})
	assert.ErrorIs(t, err, ErrSelectionLimit)

	after, err := svc.Selection(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestReplace_DuplicateIDs(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Replace(context.Background(), []int{1, 1})
	assert.Error(t, err)
}

func TestExtend_TemporaryUser(t *testing.T) {
	svc, _ := newService(t)

	// Пользователь 2 — temp_sarah с истёкшим доступом.
	updated, err := svc.Extend(context.Background(), 2, 7)
	require.NoError(t, err)
	require.NotNil(t, updated.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *updated.ExpiresAt, time.Minute)
}

func TestExtend_NonTemporaryUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Extend(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrNotTemporary)
}

func TestExtend_UnknownUser(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Extend(context.Background(), 99, 7)
	assert.ErrorIs(t, err, memstore.ErrUserNotFound)
}
