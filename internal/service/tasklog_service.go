package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"dailytodo/internal/model"
	"dailytodo/internal/repository"
)

// DailyLogStore persists DailyLog aggregates keyed by (user, day).
type DailyLogStore interface {
	FindByUserAndDay(ctx context.Context, userID uuid.UUID, day model.Day) (*model.DailyLog, error)
	Upsert(ctx context.Context, dailyLog *model.DailyLog) error
}

var _ DailyLogStore = (*repository.DailyLogRepository)(nil)

// TaskLogService is the only writer of DailyLog state.
//
// Every mutation is a read-modify-write of the whole aggregate. Losing a race
// (a concurrent first insert or a version bump by another writer) reloads the
// log and replays the mutation, at most attempts times.
type TaskLogService struct {
	store    DailyLogStore
	attempts int
}

func NewTaskLogService(store DailyLogStore, attempts int) *TaskLogService {
	if attempts < 1 {
		attempts = 1
	}
	return &TaskLogService{store: store, attempts: attempts}
}

// ListTasksForDay returns the day's tasks in display order, or an empty slice when
// the day has no log.
func (s *TaskLogService) ListTasksForDay(ctx context.Context, userID uuid.UUID, day model.Day) ([]model.Task, error) {
	dailyLog, err := s.store.FindByUserAndDay(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if dailyLog == nil {
		return []model.Task{}, nil
	}
	return SortTasks(dailyLog.Tasks), nil
}

// AddTaskToDay appends a new task to the day's log, creating the log on first use.
func (s *TaskLogService) AddTaskToDay(ctx context.Context, userID uuid.UUID, day model.Day, draft model.TaskDraft) (*model.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}
	task := model.NewTask(draft)

	err := s.mutate(ctx, userID, day,
		func() *model.DailyLog { return model.NewDailyLog(userID, day, task) },
		func(dailyLog *model.DailyLog) error {
			dailyLog.AddTask(task)
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateUserTask applies patch to one task of the day. ErrNotFound when the day
// has no log or the log has no such task; nothing is written in that case.
func (s *TaskLogService) UpdateUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string, patch model.TaskPatch) (*model.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	var updated model.Task
	err := s.mutate(ctx, userID, day, nil, func(dailyLog *model.DailyLog) error {
		task, ok := dailyLog.FindTask(taskID)
		if !ok {
			return ErrNotFound
		}
		patch.Apply(task)
		updated = *task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteUserTask removes one task and reports whether it existed. The log itself
// stays persisted even when its last task goes.
func (s *TaskLogService) DeleteUserTask(ctx context.Context, userID uuid.UUID, day model.Day, taskID string) (bool, error) {
	err := s.mutate(ctx, userID, day, nil, func(dailyLog *model.DailyLog) error {
		if !dailyLog.RemoveTask(taskID) {
			return ErrNotFound
		}
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// mutate loads the (userID, day) log, changes it and upserts it. A missing log is
// built with create, or reported as ErrNotFound when create is nil. An error from
// apply aborts without writing.
func (s *TaskLogService) mutate(
	ctx context.Context,
	userID uuid.UUID,
	day model.Day,
	create func() *model.DailyLog,
	apply func(*model.DailyLog) error,
) error {
	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		dailyLog, err := s.store.FindByUserAndDay(ctx, userID, day)
		if err != nil {
			return err
		}
		if dailyLog == nil {
			if create == nil {
				return ErrNotFound
			}
			dailyLog = create()
		} else if err := apply(dailyLog); err != nil {
			return err
		}

		err = s.store.Upsert(ctx, dailyLog)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) && !errors.Is(err, repository.ErrVersionConflict) {
			return err
		}
		lastErr = err
		log.Printf("⚠️  Daily log %s/%s: %v (attempt %d/%d)", userID, day, err, attempt, s.attempts)
	}
	return fmt.Errorf("%w: %w", ErrConflict, lastErr)
}
