package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TaskDraft carries the caller-supplied fields of a new task.
type TaskDraft struct {
	Title         string    `json:"title"`
	Priority      *Priority `json:"priority"`
	ScheduledTime *string   `json:"scheduled_time"`
}

func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if d.Priority != nil && *d.Priority != "" && !d.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Optional is a patch field that tells "absent" apart from "present but null".
// Set is false when the key was missing from the JSON document.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// TaskPatch lists the fields to change on an existing task.
// Title and Done are required task fields, so null leaves them unchanged.
// Priority and ScheduledTime are optional: null or empty clears them.
type TaskPatch struct {
	Title         *string            `json:"title"`
	Done          *bool              `json:"done"`
	Priority      Optional[Priority] `json:"priority"`
	ScheduledTime Optional[string]   `json:"scheduled_time"`
}

func (p TaskPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrTitleRequired
	}
	if p.Priority.Value != nil && *p.Priority.Value != "" && !p.Priority.Value.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

// Apply mutates t in place. The patch must have been validated.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
	if p.Priority.Set {
		if p.Priority.Value == nil || *p.Priority.Value == "" {
			t.Priority = nil
		} else {
			v := *p.Priority.Value
			t.Priority = &v
		}
	}
	if p.ScheduledTime.Set {
		if p.ScheduledTime.Value == nil || *p.ScheduledTime.Value == "" {
			t.ScheduledTime = nil
		} else {
			v := *p.ScheduledTime.Value
			t.ScheduledTime = &v
		}
	}
}
