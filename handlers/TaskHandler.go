// Package handlers provides the HTTP request handlers for TaskWebService.
//
// The task handlers list tasks, create a task and change the status of a task.
// Each handler validates its payload with the validation package, calls the task
// store under a per-request deadline and maps the outcome to an HTTP status:
//
//  - 400 with an itemized error list when the payload is rejected
//  - 404 when the referenced task does not exist
//  - 500 with a generic message when the store fails
//
// Store errors are logged with logrus and counted in Prometheus; their detail is never
// sent to the caller.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"TaskWebService/commands"
	"TaskWebService/models"
	"TaskWebService/repository"
	"TaskWebService/response"
	"TaskWebService/validation"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const (
	internalErrorMessage = "Internal Server Error"
	notFoundMessage      = "The task with given ID does not exist."
)

// TaskStore is the persistence interface the handlers depend on.
// repository.TaskRepository implements it.
type TaskStore interface {
	Find(ctx context.Context) ([]*models.Task, error)
	Save(ctx context.Context, task *models.Task) error
	FindOne(ctx context.Context, id uint) (*models.Task, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
}

// TaskHandler serves the /tasks endpoints.
type TaskHandler struct {
	store    TaskStore
	validate *validator.Validate
	log      *logrus.Logger
	metrics  *Metrics
	timeout  time.Duration
}

// NewTaskHandler creates a TaskHandler. A zero timeout disables the per-request deadline.
func NewTaskHandler(store TaskStore, validate *validator.Validate, log *logrus.Logger, metrics *Metrics, timeout time.Duration) *TaskHandler {
	return &TaskHandler{
		store:    store,
		validate: validate,
		log:      log,
		metrics:  metrics,
		timeout:  timeout,
	}
}

// List handles GET /tasks and returns all tasks ordered by date, oldest first.
//
// Example response:
//   [
//    {
//     "id": 2,
//     "title": "Task 2",
//     "date": "2024-01-01T00:00:00Z",
//     "description": "Description of Task 2",
//     "priority": "high",
//     "status": "todo"
//   },
//     ... ]
func (h *TaskHandler) List(res http.ResponseWriter, req *http.Request) {
	const operation = "get all tasks"
	ctx, cancel := h.context(req)
	defer cancel()

	tasks, err := h.store.Find(ctx)
	if err != nil {
		h.internalError(res, req, operation, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        requestName(req),
		"count":          len(tasks),
	}).Info("Processing request")
	writeJSON(res, http.StatusOK, models.ToTaskResponses(tasks))
}

// Create handles POST /tasks.
//
// Example request body:
// {
//   "title": "Task 1",
//   "date": "2024-01-01",
//   "description": "Description of Task 1",
//   "priority": "normal",
//   "status": "todo"
// }
//
// The created task, including the id assigned by the database, is returned with status 201.
func (h *TaskHandler) Create(res http.ResponseWriter, req *http.Request) {
	const operation = "create a task"
	var cmd commands.CreateTaskCommand
	if !h.decode(res, req, operation, &cmd) {
		return
	}
	sanitizeCreate(&cmd)
	if !h.valid(res, req, operation, cmd) {
		return
	}

	// the command passed dateValidator, so this cannot fail
	date, _ := validation.ParseDate(cmd.Date)
	task := &models.Task{
		Title:       cmd.Title,
		Date:        date,
		Description: cmd.Description,
		Priority:    cmd.Priority,
		Status:      cmd.Status,
	}

	ctx, cancel := h.context(req)
	defer cancel()

	if err := h.store.Save(ctx, task); err != nil {
		h.internalError(res, req, operation, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        requestName(req),
		"task id":        task.ID,
	}).Info("Processing request")
	writeJSON(res, http.StatusCreated, models.ToTaskResponse(task))
}

// Update handles PUT and PATCH /tasks. Only the status of a task can be changed.
//
// Example request body:
// {
//   "id": 1,
//   "status": "completed"
// }
//
// Example response (status 201):
// {
//   "generatedMaps": [],
//   "raw": [],
//   "affected": 1
// }
func (h *TaskHandler) Update(res http.ResponseWriter, req *http.Request) {
	const operation = "update a task"
	var cmd commands.UpdateTaskCommand
	if !h.decode(res, req, operation, &cmd) {
		return
	}
	cmd.Status = sanitize(cmd.Status)
	if !h.valid(res, req, operation, cmd) {
		return
	}

	ctx, cancel := h.context(req)
	defer cancel()

	if _, err := h.store.FindOne(ctx, cmd.Id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.metrics.Errors.WithLabelValues(requestName(req)).Inc()
			h.log.WithFields(logrus.Fields{
				"task operation": operation,
				"request":        requestName(req),
				"task id":        cmd.Id,
			}).Warn("Task not found")
			writeJSON(res, http.StatusNotFound, response.ErrorResponse{Error: notFoundMessage})
			return
		}
		h.internalError(res, req, operation, err)
		return
	}

	affected, err := h.store.UpdateStatus(ctx, cmd.Id, cmd.Status)
	if err != nil {
		h.internalError(res, req, operation, err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        requestName(req),
		"task id":        cmd.Id,
		"status":         cmd.Status,
	}).Info("Processing request")
	writeJSON(res, http.StatusCreated, response.UpdateResult{
		GeneratedMaps: []map[string]interface{}{},
		Raw:           []interface{}{},
		Affected:      affected,
	})
}

func (h *TaskHandler) context(req *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(req.Context())
	}
	return context.WithTimeout(req.Context(), h.timeout)
}

// decode reads the JSON body into dst. An empty body leaves dst zeroed so that
// validation reports every missing field.
func (h *TaskHandler) decode(res http.ResponseWriter, req *http.Request, operation string, dst interface{}) bool {
	err := json.NewDecoder(req.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	fieldErr := response.FieldError{Type: "body", Msg: "Invalid request body", Location: "body"}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fieldErr = response.FieldError{
			Type:     "field",
			Msg:      typeErr.Field + " must be of type " + typeErr.Type.String(),
			Path:     typeErr.Field,
			Location: "body",
		}
	}
	h.badRequest(res, req, operation, []response.FieldError{fieldErr})
	return false
}

func (h *TaskHandler) valid(res http.ResponseWriter, req *http.Request, operation string, cmd interface{}) bool {
	err := h.validate.Struct(cmd)
	if err == nil {
		return true
	}
	fieldErrs, ok := validation.Errors(err)
	if !ok {
		h.internalError(res, req, operation, err)
		return false
	}
	h.badRequest(res, req, operation, fieldErrs)
	return false
}

func (h *TaskHandler) badRequest(res http.ResponseWriter, req *http.Request, operation string, fieldErrs []response.FieldError) {
	h.metrics.Errors.WithLabelValues(requestName(req)).Inc()
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        requestName(req),
		"errors":         len(fieldErrs),
	}).Error("Invalid request body inputs")
	writeJSON(res, http.StatusBadRequest, response.ValidationErrorResponse{Errors: fieldErrs})
}

func (h *TaskHandler) internalError(res http.ResponseWriter, req *http.Request, operation string, err error) {
	h.metrics.Errors.WithLabelValues(requestName(req)).Inc()
	h.log.WithFields(logrus.Fields{
		"task operation": operation,
		"request":        requestName(req),
	}).Error(err.Error())
	writeJSON(res, http.StatusInternalServerError, response.ErrorResponse{Error: internalErrorMessage})
}

// sanitize trims the value and escapes it to prevent XSS attacks.
func sanitize(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

func sanitizeCreate(cmd *commands.CreateTaskCommand) {
	cmd.Title = sanitize(cmd.Title)
	cmd.Date = strings.TrimSpace(cmd.Date)
	cmd.Description = sanitize(cmd.Description)
	cmd.Priority = sanitize(cmd.Priority)
	cmd.Status = sanitize(cmd.Status)
}

func requestName(req *http.Request) string {
	return req.Method + " " + req.URL.Path
}

func writeJSON(res http.ResponseWriter, status int, body interface{}) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	json.NewEncoder(res).Encode(body)
}
