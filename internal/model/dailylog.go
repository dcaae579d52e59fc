package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyLog holds one user's tasks for one calendar day.
// At most one row exists per (UserID, Day).
type DailyLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_day"`
	Day       Day       `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_logs_user_day"`
	Tasks     TaskList  `gorm:"serializer:json"`
	Version   int64     `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDailyLog starts a log for (userID, day). A log is never created empty.
func NewDailyLog(userID uuid.UUID, day Day, first Task) *DailyLog {
	return &DailyLog{
		UserID: userID,
		Day:    day,
		Tasks:  TaskList{first},
	}
}

func (d *DailyLog) FindTask(taskID string) (*Task, bool) {
	return d.Tasks.Find(taskID)
}

// AddTask appends to the tail; display order is computed at read time.
func (d *DailyLog) AddTask(task Task) {
	d.Tasks.Add(task)
}

func (d *DailyLog) RemoveTask(taskID string) bool {
	return d.Tasks.Remove(taskID)
}

// Persisted reports whether the log has been stored at least once.
func (d *DailyLog) Persisted() bool {
	return d.Version > 0
}
