package handler

import (
	"context"
	"fmt"
	"net/http"

	"dailytodo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DailyTaskManager manages the tasks of one user-day.
type DailyTaskManager interface {
	ListTasksForDay(ctx context.Context, userID uuid.UUID, day model.Day) ([]model.Task, error)
	AddTaskToDay(ctx context.Context, userID uuid.UUID, day model.Day, draft model.TaskDraft) (*model.Task, error)
	UpdateUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string, patch model.TaskPatch) (*model.Task, error)
	DeleteUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string) (bool, error)
}

type DailyLogHandler struct {
	logs     DailyTaskManager
	users    UserLookup
	renderer SheetRenderer
}

func NewDailyLogHandler(logs DailyTaskManager, users UserLookup, renderer SheetRenderer) *DailyLogHandler {
	return &DailyLogHandler{logs: logs, users: users, renderer: renderer}
}

// userAndDay reads the caller and the :day path parameter, answering 401 or 400
// itself when either is missing or malformed.
func userAndDay(c *gin.Context) (uuid.UUID, model.Day, bool) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return uuid.Nil, "", false
	}
	day, err := model.ParseDay(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, "", false
	}
	return userID, day, true
}

// List godoc
// @Summary      List a day's tasks
// @Description  Sorted by priority (A, B, C, none) then scheduled time; empty when the day has no tasks
// @Tags         Daily log
// @Produce      json
// @Security     BearerAuth
// @Param        day  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200  {array}   model.Task
// @Failure      400  {object}  map[string]string
// @Router       /api/days/{day}/tasks [get]
func (h *DailyLogHandler) List(c *gin.Context) {
	userID, day, ok := userAndDay(c)
	if !ok {
		return
	}

	tasks, err := h.logs.ListTasksForDay(c.Request.Context(), userID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Create godoc
// @Summary      Add a task to a day
// @Tags         Daily log
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        day      path      string           true  "Day (YYYY-MM-DD)"
// @Param        request  body      model.TaskDraft  true  "New task"
// @Success      201      {object}  model.Task
// @Failure      400      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /api/days/{day}/tasks [post]
func (h *DailyLogHandler) Create(c *gin.Context) {
	userID, day, ok := userAndDay(c)
	if !ok {
		return
	}

	var draft model.TaskDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.logs.AddTaskToDay(c.Request.Context(), userID, day, draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// Update godoc
// @Summary      Update a day's task
// @Tags         Daily log
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        day      path      string           true  "Day (YYYY-MM-DD)"
// @Param        id       path      string           true  "Task ID"
// @Param        request  body      model.TaskPatch  true  "Changed fields"
// @Success      200      {object}  model.Task
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /api/days/{day}/tasks/{id} [put]
func (h *DailyLogHandler) Update(c *gin.Context) {
	userID, day, ok := userAndDay(c)
	if !ok {
		return
	}

	var patch model.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.logs.UpdateUserTask(c.Request.Context(), userID, day, c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Delete godoc
// @Summary      Delete a day's task
// @Tags         Daily log
// @Security     BearerAuth
// @Param        day  path  string  true  "Day (YYYY-MM-DD)"
// @Param        id   path  string  true  "Task ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/days/{day}/tasks/{id} [delete]
func (h *DailyLogHandler) Delete(c *gin.Context) {
	userID, day, ok := userAndDay(c)
	if !ok {
		return
	}

	removed, err := h.logs.DeleteUserTask(c.Request.Context(), userID, day, c.Param("id"))
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
// @Summary      Export a day's tasks as PDF
// @Tags         Daily log
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        day  path      string  true  "Day (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  map[string]string
// @Router       /api/days/{day}/tasks/export [get]
func (h *DailyLogHandler) Export(c *gin.Context) {
	userID, day, ok := userAndDay(c)
	if !ok {
		return
	}

	tasks, err := h.logs.ListTasksForDay(c.Request.Context(), userID, day)
	if err != nil {
		respondError(c, err)
		return
	}
	writePDF(c, h.users, h.renderer, userID, day.Time(), tasks, fmt.Sprintf("tasks_%s.pdf", day))
}
