package validation

import (
	"errors"
	"testing"
	"time"

	"TaskWebService/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreate() commands.CreateTaskCommand {
	return commands.CreateTaskCommand{
		Title:    "Buy milk",
		Date:     "2024-01-01",
		Priority: "normal",
		Status:   "todo",
	}
}

func TestCreateTaskCommand_Valid(t *testing.T) {
	validate := New()
	assert.NoError(t, validate.Struct(validCreate()))
}

func TestCreateTaskCommand_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *commands.CreateTaskCommand)
		path   string
	}{
		{"missing title", func(c *commands.CreateTaskCommand) { c.Title = "" }, "title"},
		{"short title", func(c *commands.CreateTaskCommand) { c.Title = "ab" }, "title"},
		{"missing date", func(c *commands.CreateTaskCommand) { c.Date = "" }, "date"},
		{"bad date", func(c *commands.CreateTaskCommand) { c.Date = "yesterday" }, "date"},
		{"bad priority", func(c *commands.CreateTaskCommand) { c.Priority = "urgent" }, "priority"},
		{"missing status", func(c *commands.CreateTaskCommand) { c.Status = "" }, "status"},
		{"bad status", func(c *commands.CreateTaskCommand) { c.Status = "done" }, "status"},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreate()
			tt.mutate(&cmd)

			fieldErrs, ok := Errors(validate.Struct(cmd))
			require.True(t, ok)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tt.path, fieldErrs[0].Path)
			assert.Equal(t, "field", fieldErrs[0].Type)
			assert.Equal(t, "body", fieldErrs[0].Location)
			assert.NotEmpty(t, fieldErrs[0].Msg)
		})
	}
}

func TestUpdateTaskCommand(t *testing.T) {
	validate := New()

	assert.NoError(t, validate.Struct(commands.UpdateTaskCommand{Id: 1, Status: "completed"}))

	fieldErrs, ok := Errors(validate.Struct(commands.UpdateTaskCommand{Status: "completed"}))
	require.True(t, ok)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "id", fieldErrs[0].Path)
	assert.Equal(t, "id is required", fieldErrs[0].Msg)
}

func TestErrors_NotAValidationError(t *testing.T) {
	_, ok := Errors(errors.New("boom"))
	assert.False(t, ok)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-02T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("02/01/2024")
	assert.Error(t, err)
}
