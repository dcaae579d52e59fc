package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("priority must be one of A, B, C")
)

// Priority ranks a task, A being the most important.
type Priority string

const (
	PriorityA Priority = "A"
	PriorityB Priority = "B"
	PriorityC Priority = "C"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityA, PriorityB, PriorityC:
		return true
	}
	return false
}

// Task is a single to-do item. It only exists inside a TaskList.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Done          bool      `json:"done"`
	Priority      *Priority `json:"priority,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`
}

// NewTask builds a task from a validated draft with a freshly generated id.
func NewTask(draft TaskDraft) Task {
	task := Task{
		ID:    uuid.NewString(),
		Title: strings.TrimSpace(draft.Title),
	}
	if draft.Priority != nil && *draft.Priority != "" {
		p := *draft.Priority
		task.Priority = &p
	}
	if draft.ScheduledTime != nil && *draft.ScheduledTime != "" {
		st := *draft.ScheduledTime
		task.ScheduledTime = &st
	}
	return task
}

// TaskList is an ordered task sequence stored as a single JSON column.
// Insertion order is the stored order.
type TaskList []Task

// Find returns a pointer into the list so callers can mutate the task in place.
func (l TaskList) Find(id string) (*Task, bool) {
	for i := range l {
		if l[i].ID == id {
			return &l[i], true
		}
	}
	return nil, false
}

func (l *TaskList) Add(task Task) {
	*l = append(*l, task)
}

// Remove drops the task with the given id and reports whether one was removed.
func (l *TaskList) Remove(id string) bool {
	kept := make(TaskList, 0, len(*l))
	for _, t := range *l {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(*l) {
		return false
	}
	*l = kept
	return true
}

// Clone returns a deep copy: changing a task or its optional fields in the copy
// never shows through in l.
func (l TaskList) Clone() TaskList {
	out := make(TaskList, len(l))
	for i, t := range l {
		if t.Priority != nil {
			p := *t.Priority
			t.Priority = &p
		}
		if t.ScheduledTime != nil {
			st := *t.ScheduledTime
			t.ScheduledTime = &st
		}
		out[i] = t
	}
	return out
}
