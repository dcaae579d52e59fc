package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dailytodo/internal/model"
	"dailytodo/internal/repository"
)

// TaskService manages the user's flat task list, the one not tied to any day.
type TaskService struct {
	users repository.UserRepositoryInterface
}

func NewTaskService(users repository.UserRepositoryInterface) *TaskService {
	return &TaskService{users: users}
}

// ListTasks returns the flat list in insertion order.
func (s *TaskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Tasks == nil {
		return []model.Task{}, nil
	}
	return user.Tasks.Clone(), nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID uuid.UUID, draft model.TaskDraft) (*model.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	task := model.NewTask(draft)
	user.Tasks.Add(task)
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID uuid.UUID, taskID string, patch model.TaskPatch) (*model.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	task, ok := user.Tasks.Find(taskID)
	if !ok {
		return nil, ErrNotFound
	}
	patch.Apply(task)
	updated := *task

	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask reports false without writing when the task does not exist.
func (s *TaskService) DeleteTask(ctx context.Context, userID uuid.UUID, taskID string) (bool, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if !user.Tasks.Remove(taskID) {
		return false, nil
	}
	if err := s.save(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

func (s *TaskService) loadUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *TaskService) save(ctx context.Context, user *model.User) error {
	err := s.users.Save(ctx, user)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrNotFound
	}
	return err
}
