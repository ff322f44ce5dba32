package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"TaskWebService/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return db
}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTask(title, date string) *models.Task {
	return &models.Task{
		Title:       title,
		Date:        day(date),
		Description: "description of " + title,
		Priority:    "normal",
		Status:      "todo",
	}
}

func TestTaskRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTask("Write report", "2024-01-01")
	require.NoError(t, repo.Save(ctx, task))
	assert.NotZero(t, task.ID)

	var found models.Task
	require.NoError(t, db.First(&found, "id = ?", task.ID).Error)
	assert.Equal(t, "Write report", found.Title)
	assert.True(t, found.Date.Equal(day("2024-01-01")))

	second := newTask("Call Bob", "2024-01-02")
	require.NoError(t, repo.Save(ctx, second))
	assert.NotEqual(t, task.ID, second.ID)
}

func TestTaskRepository_Find(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		tasks, err := repo.Find(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	for _, task := range []*models.Task{
		newTask("third", "2024-03-01"),
		newTask("second", "2024-01-02"),
		newTask("first", "2024-01-01"),
		newTask("second-b", "2024-01-02"),
	} {
		require.NoError(t, repo.Save(ctx, task))
	}

	t.Run("ordered by date ascending", func(t *testing.T) {
		tasks, err := repo.Find(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 4)

		var titles []string
		for _, task := range tasks {
			titles = append(titles, task.Title)
		}
		assert.Equal(t, []string{"first", "second", "second-b", "third"}, titles)
	})
}

func TestTaskRepository_FindOne(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTask("Find me", "2024-01-01")
	require.NoError(t, repo.Save(ctx, task))

	t.Run("existing task", func(t *testing.T) {
		found, err := repo.FindOne(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, task.ID, found.ID)
		assert.Equal(t, "Find me", found.Title)
	})

	t.Run("non-existent task", func(t *testing.T) {
		_, err := repo.FindOne(ctx, 99999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	task := newTask("Update me", "2024-01-01")
	require.NoError(t, repo.Save(ctx, task))

	t.Run("existing task", func(t *testing.T) {
		affected, err := repo.UpdateStatus(ctx, task.ID, "completed")
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		found, err := repo.FindOne(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", found.Status)
		assert.Equal(t, task.Title, found.Title)
		assert.Equal(t, task.Description, found.Description)
		assert.Equal(t, task.Priority, found.Priority)
		assert.True(t, found.Date.Equal(task.Date))
	})

	t.Run("non-existent task", func(t *testing.T) {
		affected, err := repo.UpdateStatus(ctx, 99999, "completed")
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestTaskRepository_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Find(ctx)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, Ping(context.Background(), db))
}
