package spin_repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lucky_wheel/internal/model"
	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/repository/spin_repo"
)

func record(label string, at time.Time) *model.SpinRecord {
	return &model.SpinRecord{
		ID:           uuid.New(),
		Label:        label,
		Color:        "#FF0000",
		SegmentCount: 2,
		StartedAt:    at.Add(-4 * time.Second),
		FinishedAt:   at,
	}
}

func TestMemory_CreateGet(t *testing.T) {
	ctx := context.Background()
	r := spin_repo.NewMemorySpinRepository(0)

	rec := record("Win", time.Now())
	require.NoError(t, r.Create(ctx, rec))

	got, err := r.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, *rec, *got)

	require.Error(t, r.Create(ctx, rec), "duplicate id")

	_, err = r.Get(ctx, uuid.New())
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemory_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	r := spin_repo.NewMemorySpinRepository(0)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	for i, label := range []string{"A", "B", "C"} {
		require.NoError(t, r.Create(ctx, record(label, base.Add(time.Duration(i)*time.Minute))))
	}

	list, err := r.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "C", list[0].Label)
	require.Equal(t, "B", list[1].Label)

	list, err = r.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)

	list, err = r.List(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestMemory_CapacityDropsOldest(t *testing.T) {
	ctx := context.Background()
	r := spin_repo.NewMemorySpinRepository(2)
	now := time.Now()

	first := record("A", now)
	require.NoError(t, r.Create(ctx, first))
	require.NoError(t, r.Create(ctx, record("B", now)))
	third := record("C", now)
	require.NoError(t, r.Create(ctx, third))

	_, err := r.Get(ctx, first.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	got, err := r.Get(ctx, third.ID)
	require.NoError(t, err)
	require.Equal(t, "C", got.Label)

	list, err := r.List(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B"}, []string{list[0].Label, list[1].Label})
}
