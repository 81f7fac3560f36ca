package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fittracker/internal/models"
)

func TestWeightEntryRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	readRepo := NewWeightEntryReadRepository(db)
	writeRepo := NewWeightEntryWriteRepository(db)
	ctx := context.Background()

	t.Run("GetLatestWithoutEntries", func(t *testing.T) {
		entry, err := readRepo.GetLatest(ctx, "user-a")
		assert.NoError(t, err)
		assert.Nil(t, entry)
	})

	base := time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		ts := base.AddDate(0, 0, i)
		require.NoError(t, writeRepo.Save(ctx, &models.WeightEntryDB{
			EntryID:   uuid.NewString(),
			UserID:    "user-a",
			Weight:    90 - float64(i)*0.1,
			Date:      ts.Format("2006-01-02"),
			Timestamp: ts,
		}))
	}
	require.NoError(t, writeRepo.Save(ctx, &models.WeightEntryDB{
		EntryID:   uuid.NewString(),
		UserID:    "user-b",
		Weight:    60,
		Date:      "2025-01-01",
		Timestamp: base.AddDate(1, 0, 0),
	}))

	t.Run("ListRecent", func(t *testing.T) {
		entries, err := readRepo.ListRecent(ctx, "user-a", 30)
		require.NoError(t, err)
		require.Len(t, entries, 30)
		assert.Equal(t, base.AddDate(0, 0, 34).Format("2006-01-02"), entries[0].Date)
		assert.Equal(t, base.AddDate(0, 0, 5).Format("2006-01-02"), entries[29].Date)
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i-1].Timestamp.After(entries[i].Timestamp))
		}
	})

	t.Run("GetLatest", func(t *testing.T) {
		entry, err := readRepo.GetLatest(ctx, "user-a")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, base.AddDate(0, 0, 34).Format("2006-01-02"), entry.Date)
		assert.Equal(t, "user-a", entry.UserID)
	})
}
