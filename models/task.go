// Package models contains the data models for the application to be used in request hanlding.
package models

import "time"

// Task represents a task in the system.
// Task has the following properties:
// - ID: The unique identifier of the task, assigned by the database.
// - Title: The title of the task.
// - Date: The point in time the task is due, used as the default sort key.
// - Description: The optional description of the task.
// - Priority: The priority of the task (low, normal, high).
// - Status: The status of the task (todo, inProgress, completed).
//
// CreatedAt and UpdatedAt are maintained by GORM and never leave the service.
type Task struct {
	ID          uint      `gorm:"primarykey"`
	Title       string    `gorm:"size:100;not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Priority    string    `gorm:"size:20;not null"`
	Status      string    `gorm:"size:20;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for the Task model.
func (Task) TableName() string {
	return "task"
}

// TaskResponse is the external representation of a task.
//
// Example:
// {
//   "id": 1,
//   "title": "Task 1",
//   "date": "2024-01-01T00:00:00Z",
//   "description": "Description of Task 1",
//   "priority": "normal",
//   "status": "todo"
// }
type TaskResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

// ToTaskResponse converts a Task entity to its external representation.
// Only the fields listed in TaskResponse are copied.
func ToTaskResponse(task *Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Date:        task.Date.UTC(),
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
	}
}

// ToTaskResponses converts a list of tasks, preserving order.
// The result is never nil so an empty list encodes as [].
func ToTaskResponses(tasks []*Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, ToTaskResponse(task))
	}
	return out
}
