package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftelite/onboarding-go/internal/model"
)

func TestProfilesGetMissing(t *testing.T) {
	store := NewProfiles()

	_, err := store.GetByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestProfilesUpsertReplacesByUserID(t *testing.T) {
	store := NewProfiles()
	ctx := context.Background()

	row := &model.Profile{
		UserID:   "user-1",
		Role:     model.RolePlayer,
		FullName: "Alex Doe",
		Location: "Dublin",
		Status:   "pending",
	}
	require.NoError(t, store.Upsert(ctx, row))

	row.Location = "Cork"
	require.NoError(t, store.Upsert(ctx, row))

	got, err := store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Cork", got.Location)
	assert.Equal(t, 1, store.Count())
}

func TestProfilesCopiesOnReadAndWrite(t *testing.T) {
	store := NewProfiles()
	ctx := context.Background()

	row := &model.Profile{UserID: "user-1", FullName: "Alex Doe"}
	require.NoError(t, store.Upsert(ctx, row))

	// Mutating the caller's struct must not reach the stored row
	row.FullName = "Changed"
	got, err := store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alex Doe", got.FullName)

	// Nor must mutating a read result
	got.FullName = "Changed"
	again, err := store.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Alex Doe", again.FullName)
}
