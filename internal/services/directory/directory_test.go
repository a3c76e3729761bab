package directory

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bounceboom/training-portal/internal/models"
	"github.com/bounceboom/training-portal/internal/services/query"
	"github.com/bounceboom/training-portal/internal/storage/memstore"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(t *testing.T) *Service {
	t.Helper()
	return New(memstore.NewSeeded(), newNoopLogger(), 7)
}

func strPtr(s string) *string { return &s }

func TestCreate_Employee(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "Anna Lee",
		Email:    "anna.lee@bounceboom.com",
		Username: "anna_coach",
		Role:     models.RoleEmployee,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Nil(t, created.LastLogin)
	assert.Nil(t, created.ExpiresAt, "employee must not get an expiration")
	assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)
}

func TestCreate_TemporaryDefaultsToSevenDays(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "Pat Visitor",
		Email:    "pat@temp.com",
		Username: "temp_pat",
		Role:     models.RoleTemporary,
	})
	require.NoError(t, err)

	require.NotNil(t, created.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *created.ExpiresAt, time.Minute)
}

func TestCreate_TemporaryWithExplicitDuration(t *testing.T) {
	svc := newService(t)

	created, err := svc.Create(context.Background(), models.DummyUser{
		Name:           "Pat Visitor",
		Email:          "pat@temp.com",
		Username:       "temp_pat",
		Role:           models.RoleTemporary,
		AccessDuration: 30,
	})
	require.NoError(t, err)

	require.NotNil(t, created.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *created.ExpiresAt, time.Minute)
}

func TestCreate_InvalidUsername(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "Bad Actor",
		Email:    "bad@bounceboom.com",
		Username: "bad actor!",
		Role:     models.RoleEmployee,
	})
	assert.ErrorIs(t, err, ErrInvalidUsername)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	svc := newService(t)

	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:     "John Clone",
		Email:    "clone@bounceboom.com",
		Username: "john_coach",
		Role:     models.RoleEmployee,
	})
	assert.ErrorIs(t, err, memstore.ErrUsernameTaken)
}

func TestUpdate_PatchPreservesUnsetFields(t *testing.T) {
	svc := newService(t)

	updated, err := svc.Update(context.Background(), 1, models.UserPatch{
		Name: strPtr("John A. Smith"),
	})
	require.NoError(t, err)

	assert.Equal(t, "John A. Smith", updated.Name)
	assert.Equal(t, "john.smith@bounceboom.com", updated.Email)
	assert.Equal(t, "john_coach", updated.Username)
	assert.Equal(t, models.RoleEmployee, updated.Role)
}

func TestUpdate_RoleChangeToTemporarySetsExpiration(t *testing.T) {
	svc := newService(t)

	updated, err := svc.Update(context.Background(), 1, models.UserPatch{
		Role: strPtr(models.RoleTemporary),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.ExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), *updated.ExpiresAt, time.Minute)
}

func TestUpdate_RoleChangeFromTemporaryClearsExpiration(t *testing.T) {
	svc := newService(t)

	updated, err := svc.Update(context.Background(), 2, models.UserPatch{
		Role: strPtr(models.RoleEmployee),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ExpiresAt)
}

func TestUpdate_ExplicitExpiration(t *testing.T) {
	svc := newService(t)

	updated, err := svc.Update(context.Background(), 2, models.UserPatch{
		ExpiresAt: strPtr("2024-03-01"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.ExpiresAt)
	assert.Equal(t, "2024-03-01", updated.ExpiresAt.Format(DateLayout))
}

func TestUpdate_BadExpirationDate(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), 2, models.UserPatch{
		ExpiresAt: strPtr("not-a-date"),
	})
	assert.Error(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), 99, models.UserPatch{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, memstore.ErrUserNotFound)
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	removed, err := svc.Delete(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, "lisa_coach", removed.Username)

	_, err = svc.Get(ctx, 6)
	assert.ErrorIs(t, err, memstore.ErrUserNotFound)
}

func TestDelete_NotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, memstore.ErrUserNotFound)
}

func TestList_FilterAndSort(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "", "all", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 6)
	assert.Equal(t, "Carlos Martinez", all[0].Name, "default sort is by name ascending")

	temps, err := svc.List(ctx, "", models.RoleTemporary, query.SortByCreatedAt, query.OrderDesc)
	require.NoError(t, err)
	require.Len(t, temps, 2)
	assert.Equal(t, "temp_sarah", temps[0].Username)
	assert.Equal(t, "temp_carlos", temps[1].Username)
}

func TestList_UnknownSortField(t *testing.T) {
	svc := newService(t)

	_, err := svc.List(context.Background(), "", "all", "email", query.OrderAsc)
	assert.Error(t, err)
}
