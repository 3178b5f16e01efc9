package delivery

import (
	"io"
	"net/http"

	taskdto "taskboard-backend/internal/task/dto"
	"taskboard-backend/internal/task/query"
	"taskboard-backend/internal/task/usecase"
	"taskboard-backend/pkg/apperror"
	"taskboard-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxImportBytes caps the YAML document accepted by Import.
const maxImportBytes = 1 << 20

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// GetTasks returns the caller's tasks matching the query filters
// GET /api/tasks?projectId=&completed=&isArchived=&isRecurring=&priority=&dueDate=&labelIds=&search=&parentTaskId=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	filter, err := query.Parse(c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.taskUsecase.List(c.Request.Context(), c.GetString("userID"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetViews returns the dashboard buckets and stats
// GET /api/tasks/views
func (h *TaskHandler) GetViews(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	views, err := h.taskUsecase.Views(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	task, err := h.taskUsecase.Get(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req taskdto.CreateTaskRequest
	if !response.BindJSON(c, &req) {
		return
	}

	task, err := h.taskUsecase.Create(c.Request.Context(), c.GetString("userID"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	var req taskdto.UpdateTaskRequest
	if !response.BindJSON(c, &req) {
		return
	}

	task, err := h.taskUsecase.Update(c.Request.Context(), c.GetString("userID"), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	if err := h.taskUsecase.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ImportTasks creates a task tree from a YAML body
// POST /api/tasks/import
func (h *TaskHandler) ImportTasks(c *gin.Context) {
	if !response.AllowQuery(c) {
		return
	}
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		response.Error(c, apperror.Validation("Invalid request body"))
		return
	}
	if len(data) > maxImportBytes {
		response.Error(c, apperror.Validation("Import document is too large"))
		return
	}

	result, err := h.taskUsecase.Import(c.Request.Context(), c.GetString("userID"), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
