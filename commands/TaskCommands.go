// Package commands contains the commands for the application to be used for request inputs.
package commands

// CreateTaskCommand represents a command to create a task.
// Date accepts an RFC 3339 timestamp or a plain calendar date (2006-01-02).
type CreateTaskCommand struct {
	Title       string `json:"title" validate:"required,min=3,max=100,fieldValidator"`
	Date        string `json:"date" validate:"required,dateValidator"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"required,priorityValidator"`
	Status      string `json:"status" validate:"required,statusValidator"`
}

// UpdateTaskCommand represents a command to change the status of a task.
type UpdateTaskCommand struct {
	Id     uint   `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,statusValidator"`
}
