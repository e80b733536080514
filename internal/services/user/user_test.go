package user

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	"github.com/magabrotheeeer/gym-aggregator/internal/storage/kv"
)

var demoSeed = []models.User{
	{ID: "u1", Name: "Ana García", Email: "ana@gymapp.local", Role: models.RoleClient, Active: true, CreatedAt: time.Now()},
	{ID: "u2", Name: "Admin Demo", Email: "admin@gymapp.local", Role: models.RoleAdmin, Active: true, CreatedAt: time.Now()},
}

func testService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(context.Background(), kv.NewMemory(), demoSeed, log)
	require.NoError(t, err)
	return svc
}

func TestNewSeedsDemoUsers(t *testing.T) {
	svc := testService(t)
	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestSeedDoesNotOverrideExisting(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := kv.NewMemory()

	_, err := New(ctx, store, demoSeed, log)
	require.NoError(t, err)
	// Повторная инициализация над тем же хранилищем не затирает данные.
	svc, err := New(ctx, store, []models.User{{ID: "other"}}, log)
	require.NoError(t, err)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := testService(t)
	_, err := svc.Create(context.Background(), models.DummyUser{
		Name:  "Otra Ana",
		Email: "ANA@gymapp.local",
		Role:  models.RoleClient,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateUpdateRemove(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.DummyUser{
		Name:  "Pedro Martínez",
		Email: "pedro@gymapp.local",
		Role:  models.RoleClient,
	})
	require.NoError(t, err)

	got, err := svc.Read(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.Active)

	inactive := false
	err = svc.Update(ctx, id, models.DummyUser{
		Name:   "Pedro Martínez",
		Email:  "pedro@gymapp.local",
		Role:   models.RoleTrainer,
		Active: &inactive,
	})
	require.NoError(t, err)

	got, err = svc.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTrainer, got.Role)
	assert.False(t, got.Active)

	require.NoError(t, svc.Remove(ctx, id))
	assert.ErrorIs(t, svc.Remove(ctx, id), ErrNotFound)
}
