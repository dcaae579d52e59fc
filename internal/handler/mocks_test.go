package handler_test

import (
	"context"
	"io"

	"dailytodo/internal/export"
	"dailytodo/internal/middleware"
	"dailytodo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Мок сервиса авторизации
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) LoginWithGoogle(ctx context.Context, googleToken string) (string, error) {
	args := m.Called(ctx, googleToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, userID)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

// Мок сервиса дневных задач
type MockDailyTaskManager struct {
	mock.Mock
}

func (m *MockDailyTaskManager) ListTasksForDay(ctx context.Context, userID uuid.UUID, day model.Day) ([]model.Task, error) {
	args := m.Called(ctx, userID, day)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockDailyTaskManager) AddTaskToDay(ctx context.Context, userID uuid.UUID, day model.Day, draft model.TaskDraft) (*model.Task, error) {
	args := m.Called(ctx, userID, day, draft)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockDailyTaskManager) UpdateUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string, patch model.TaskPatch) (*model.Task, error) {
	args := m.Called(ctx, userID, day, taskID, patch)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockDailyTaskManager) DeleteUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string) (bool, error) {
	args := m.Called(ctx, userID, day, taskID)
	return args.Bool(0), args.Error(1)
}

// Мок сервиса задач без привязки к дню
type MockTaskManager struct {
	mock.Mock
}

func (m *MockTaskManager) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	tasks := args.Get(0)
	if tasks == nil {
		return nil, args.Error(1)
	}
	return tasks.([]model.Task), args.Error(1)
}

func (m *MockTaskManager) CreateTask(ctx context.Context, userID uuid.UUID, draft model.TaskDraft) (*model.Task, error) {
	args := m.Called(ctx, userID, draft)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskManager) UpdateTask(ctx context.Context, userID uuid.UUID, taskID string, patch model.TaskPatch) (*model.Task, error) {
	args := m.Called(ctx, userID, taskID, patch)
	task := args.Get(0)
	if task == nil {
		return nil, args.Error(1)
	}
	return task.(*model.Task), args.Error(1)
}

func (m *MockTaskManager) DeleteTask(ctx context.Context, userID uuid.UUID, taskID string) (bool, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Bool(0), args.Error(1)
}

// Мок генератора PDF
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(w io.Writer, sheet export.Sheet) error {
	args := m.Called(w, sheet)
	if err := args.Error(0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "%PDF-1.3 stub")
	return err
}

// withUser stands in for JWTAuthMiddleware.
func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}
