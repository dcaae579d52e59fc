package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dailytodo/internal/export"
	"dailytodo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TaskManager manages the flat, day-independent task list.
type TaskManager interface {
	ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	CreateTask(ctx context.Context, userID uuid.UUID, draft model.TaskDraft) (*model.Task, error)
	UpdateTask(ctx context.Context, userID uuid.UUID, taskID string, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, userID uuid.UUID, taskID string) (bool, error)
}

// UserLookup resolves the display name printed on exports.
type UserLookup interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// SheetRenderer turns a to-do sheet into a printable document.
type SheetRenderer interface {
	Render(w io.Writer, sheet export.Sheet) error
}

type TaskHandler struct {
	tasks    TaskManager
	users    UserLookup
	renderer SheetRenderer
	now      func() time.Time
}

func NewTaskHandler(tasks TaskManager, users UserLookup, renderer SheetRenderer) *TaskHandler {
	return &TaskHandler{tasks: tasks, users: users, renderer: renderer, now: time.Now}
}

// List godoc
// @Summary      List tasks
// @Description  Returns the flat task list in insertion order
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.Task
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary      Create task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      model.TaskDraft  true  "New task"
// @Success      201      {object}  model.Task
// @Failure      400      {object}  map[string]string
// @Router       /api/tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var draft model.TaskDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), userID, draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary      Update task
// @Description  Absent fields are left alone; null priority or scheduled_time clears it
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string           true  "Task ID"
// @Param        request  body      model.TaskPatch  true  "Changed fields"
// @Success      200      {object}  model.Task
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), userID, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary      Delete task
// @Tags         Tasks
// @Security     BearerAuth
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	removed, err := h.tasks.DeleteTask(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Export godoc
// @Summary      Export tasks as PDF
// @Tags         Tasks
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    file
// @Failure      401  {object}  map[string]string
// @Router       /api/tasks/export [get]
func (h *TaskHandler) Export(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	writePDF(c, h.users, h.renderer, userID, h.now(), tasks, fmt.Sprintf("tasks_%s.pdf", userID))
}
