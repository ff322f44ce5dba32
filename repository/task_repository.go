// Package repository stores tasks in a relational database through GORM.
package repository

import (
	"context"
	"errors"
	"fmt"

	"TaskWebService/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// TaskRepository provides access to task storage.
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Find returns every task ordered by date, oldest first.
// Tasks sharing a date keep insertion order.
func (r *TaskRepository) Find(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := r.db.WithContext(ctx).Order("date ASC").Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	return tasks, nil
}

// Save inserts a new task. The database assigns task.ID.
func (r *TaskRepository) Save(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindOne retrieves a task by its ID. It returns ErrNotFound when no row matches.
func (r *TaskRepository) FindOne(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// UpdateStatus sets the status of the task with the given ID and reports
// the number of affected rows. No other column except updated_at is written.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Update("status", status)
	if err := result.Error; err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}
	return result.RowsAffected, nil
}
