package comment

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to TEST_DATABASE_URL and migrates the comments table.
// Tests using it are skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres test in short mode")
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Comment{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	threadID := "test:" + uuid.NewString()

	root := at(uuid.NewString(), "", 0)
	root.ThreadID = threadID
	root.Mentions = []string{"u2"}
	_, err := repo.Insert(ctx, root)
	require.NoError(t, err)

	reply := at(uuid.NewString(), root.ID, 0)
	reply.ThreadID = threadID
	reply.Mentions = []string{}
	_, err = repo.Insert(ctx, reply)
	require.NoError(t, err)
	assert.Greater(t, reply.Seq, root.Seq)

	list, err := repo.ListByThread(ctx, threadID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, root.ID, list[0].ID)
	assert.Equal(t, []string{"u2"}, list[0].Mentions)

	content := "edited"
	updated, err := repo.Update(ctx, root.ID, Patch{Content: &content, IfVersion: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "edited", updated.Content)

	_, err = repo.Update(ctx, root.ID, Patch{Content: &content, IfVersion: 1})
	assert.ErrorIs(t, err, ErrConflict)

	tombstone, err := repo.MarkTombstoned(ctx, root.ID, 0)
	require.NoError(t, err)
	assert.True(t, tombstone.IsTombstoned())
	assert.Empty(t, tombstone.Content)

	stored, err := repo.Get(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, StateTombstoned, stored.State)
	assert.Equal(t, 3, stored.Version)

	require.NoError(t, repo.DeleteTree(ctx, threadID, []string{root.ID, reply.ID}))
	_, err = repo.Get(ctx, reply.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
