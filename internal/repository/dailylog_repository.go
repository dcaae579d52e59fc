package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dailytodo/internal/model"
)

type DailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{db: db}
}

// FindByUserAndDay returns the log for (userID, day), or nil, nil when there is none.
func (r *DailyLogRepository) FindByUserAndDay(ctx context.Context, userID uuid.UUID, day model.Day) (*model.DailyLog, error) {
	var dailyLog model.DailyLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID, day).
		First(&dailyLog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find daily log: %w", err)
	}
	return &dailyLog, nil
}

// Upsert persists the whole aggregate.
//
// A log that was never stored is inserted with Version 1; losing the race against
// another insert for the same (user, day) yields ErrDuplicateKey. A stored log
// replaces its task list only if its Version is still current, otherwise
// ErrVersionConflict is returned and nothing is written.
func (r *DailyLogRepository) Upsert(ctx context.Context, dailyLog *model.DailyLog) error {
	if !dailyLog.Persisted() {
		return r.insert(ctx, dailyLog)
	}
	return r.replace(ctx, dailyLog)
}

func (r *DailyLogRepository) insert(ctx context.Context, dailyLog *model.DailyLog) error {
	if dailyLog.ID == uuid.Nil {
		dailyLog.ID = uuid.New()
	}
	if dailyLog.Tasks == nil {
		dailyLog.Tasks = model.TaskList{}
	}
	dailyLog.Version = 1

	if err := r.db.WithContext(ctx).Create(dailyLog).Error; err != nil {
		dailyLog.Version = 0
		if isDuplicateKey(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("upsert daily log: %w", err)
	}
	return nil
}

func (r *DailyLogRepository) replace(ctx context.Context, dailyLog *model.DailyLog) error {
	tasks := dailyLog.Tasks
	if tasks == nil {
		tasks = model.TaskList{}
	}
	next := model.DailyLog{
		Tasks:     tasks,
		Version:   dailyLog.Version + 1,
		UpdatedAt: time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&model.DailyLog{}).
		Where("id = ? AND version = ?", dailyLog.ID, dailyLog.Version).
		Select("tasks", "version", "updated_at").
		Updates(&next)
	if result.Error != nil {
		return fmt.Errorf("upsert daily log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVersionConflict
	}

	dailyLog.Tasks = tasks
	dailyLog.Version = next.Version
	dailyLog.UpdatedAt = next.UpdatedAt
	return nil
}
