package plan

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-aggregator/internal/mockdata"
	"github.com/magabrotheeeer/gym-aggregator/internal/models"
	"github.com/magabrotheeeer/gym-aggregator/internal/storage/kv"
)

func testService(t *testing.T) *Service {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := New(context.Background(), kv.NewMemory(), log)
	require.NoError(t, err)
	return svc
}

func TestNewSeedsDefaultCatalog(t *testing.T) {
	svc := testService(t)

	plans, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, len(mockdata.DefaultPlans()))
}

func TestCreateReadRemove(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.DummyPlan{Name: "Estudiante", Price: 25, Duration: 1})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Estudiante", got.Name)
	assert.Equal(t, 25.0, got.Price)
	assert.True(t, got.Active)

	require.NoError(t, svc.Remove(ctx, id))
	_, err = svc.Read(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDuplicateName(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.DummyPlan{Name: "premium", Price: 55, Duration: 1})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdate(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, models.DummyPlan{Name: "Mañanas", Price: 20, Duration: 1})
	require.NoError(t, err)

	inactive := false
	err = svc.Update(ctx, id, models.DummyPlan{Name: "Mañanas", Price: 22, Duration: 1, Active: &inactive})
	require.NoError(t, err)

	got, err := svc.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 22.0, got.Price)
	assert.False(t, got.Active)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := testService(t)
	err := svc.Update(context.Background(), "missing", models.DummyPlan{Name: "X", Price: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveUnknownID(t *testing.T) {
	svc := testService(t)
	assert.ErrorIs(t, svc.Remove(context.Background(), "missing"), ErrNotFound)
}
