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

func newTestUser(username, email string) *models.UserDB {
	return &models.UserDB{
		UserID:    uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  "hash",
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestUserRepositories(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	alice := newTestUser("alice", "alice@example.com")
	age := 30
	alice.Age = &age
	require.NoError(t, writeRepo.Save(ctx, alice))

	t.Run("GetByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, alice.UserID, user.UserID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, 30, *user.Age)
		assert.Nil(t, user.Height)
	})

	t.Run("GetByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		err := writeRepo.Save(ctx, newTestUser("alice", "other@example.com"))
		assert.ErrorIs(t, err, models.ErrDuplicateKey)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		err := writeRepo.Save(ctx, newTestUser("alice2", "alice@example.com"))
		assert.ErrorIs(t, err, models.ErrDuplicateKey)
	})

	t.Run("Update", func(t *testing.T) {
		weight := 79.5
		calories := 0
		err := writeRepo.Update(ctx, alice.UserID, models.UserUpdate{
			Weight:           &weight,
			DailyCalorieGoal: &calories,
		})
		require.NoError(t, err)

		user, err := readRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user.Weight)
		assert.Equal(t, 79.5, *user.Weight)
		require.NotNil(t, user.DailyCalorieGoal)
		assert.Equal(t, 0, *user.DailyCalorieGoal)
		assert.Equal(t, 30, *user.Age, "untouched fields are kept")
	})

	t.Run("EmptyUpdateIsNoop", func(t *testing.T) {
		assert.NoError(t, writeRepo.Update(ctx, alice.UserID, models.UserUpdate{}))
	})
}
