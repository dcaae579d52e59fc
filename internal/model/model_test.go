package model_test

import (
	"encoding/json"
	"testing"

	"dailytodo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := model.ParseDay("2024-03-09")
	assert.NoError(t, err)
	assert.Equal(t, model.Day("2024-03-09"), day)
	assert.Equal(t, 9, day.Time().Day())

	for _, raw := range []string{"", "2024-3-9", "09-03-2024", "2024-02-30", "2024-03-09T10:00:00Z"} {
		_, err := model.ParseDay(raw)
		assert.ErrorIs(t, err, model.ErrInvalidDay, raw)
	}
}

func TestDailyLog_TaskLifecycle(t *testing.T) {
	// Arrange
	first := model.NewTask(model.TaskDraft{Title: "first"})
	log := model.NewDailyLog(uuid.New(), "2024-03-09", first)
	second := model.NewTask(model.TaskDraft{Title: "second"})

	// Act
	log.AddTask(second)

	// Assert
	require.Len(t, log.Tasks, 2)
	assert.Equal(t, "second", log.Tasks[1].Title)
	assert.False(t, log.Persisted())

	found, ok := log.FindTask(first.ID)
	require.True(t, ok)
	found.Done = true
	assert.True(t, log.Tasks[0].Done, "FindTask must return a pointer into the log")

	_, ok = log.FindTask("missing")
	assert.False(t, ok)

	assert.False(t, log.RemoveTask("missing"))
	assert.True(t, log.RemoveTask(first.ID))
	assert.False(t, log.RemoveTask(first.ID))
	assert.Len(t, log.Tasks, 1)
}

func TestNewTask(t *testing.T) {
	p := model.PriorityB
	empty := ""
	task := model.NewTask(model.TaskDraft{Title: "  write report ", Priority: &p, ScheduledTime: &empty})

	assert.NotEmpty(t, task.ID)
	_, err := uuid.Parse(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, "write report", task.Title)
	assert.False(t, task.Done)
	require.NotNil(t, task.Priority)
	assert.Equal(t, model.PriorityB, *task.Priority)
	assert.Nil(t, task.ScheduledTime)

	// the task must not alias the draft
	p = model.PriorityC
	assert.Equal(t, model.PriorityB, *task.Priority)
}

func TestTaskDraft_Validate(t *testing.T) {
	bad := model.Priority("D")
	blank := model.Priority("")

	assert.NoError(t, model.TaskDraft{Title: "ok"}.Validate())
	assert.NoError(t, model.TaskDraft{Title: "ok", Priority: &blank}.Validate())
	assert.ErrorIs(t, model.TaskDraft{Title: "   "}.Validate(), model.ErrTitleRequired)
	assert.ErrorIs(t, model.TaskDraft{Title: "ok", Priority: &bad}.Validate(), model.ErrInvalidPriority)
}

func TestTaskPatch_UnmarshalDistinguishesAbsentFromNull(t *testing.T) {
	var patch model.TaskPatch
	err := json.Unmarshal([]byte(`{"done": true, "priority": null}`), &patch)
	require.NoError(t, err)

	assert.Nil(t, patch.Title)
	require.NotNil(t, patch.Done)
	assert.True(t, *patch.Done)
	assert.True(t, patch.Priority.Set)
	assert.Nil(t, patch.Priority.Value)
	assert.False(t, patch.ScheduledTime.Set)
}

func TestTaskPatch_Apply(t *testing.T) {
	a := model.PriorityA
	at := "09:00"
	base := func() model.Task {
		return model.Task{ID: "t1", Title: "title", Priority: &a, ScheduledTime: &at}
	}

	t.Run("absent fields are left unchanged", func(t *testing.T) {
		task := base()
		done := true
		model.TaskPatch{Done: &done}.Apply(&task)

		assert.True(t, task.Done)
		assert.Equal(t, "title", task.Title)
		require.NotNil(t, task.Priority)
		assert.Equal(t, model.PriorityA, *task.Priority)
		require.NotNil(t, task.ScheduledTime)
		assert.Equal(t, "09:00", *task.ScheduledTime)
	})

	t.Run("null clears optional fields", func(t *testing.T) {
		task := base()
		model.TaskPatch{
			Priority:      model.Null[model.Priority](),
			ScheduledTime: model.Some(""),
		}.Apply(&task)

		assert.Nil(t, task.Priority)
		assert.Nil(t, task.ScheduledTime)
		assert.Equal(t, "title", task.Title)
	})

	t.Run("values replace fields", func(t *testing.T) {
		task := base()
		title := "renamed"
		model.TaskPatch{
			Title:         &title,
			Priority:      model.Some(model.PriorityC),
			ScheduledTime: model.Some("14:00"),
		}.Apply(&task)

		assert.Equal(t, "renamed", task.Title)
		assert.Equal(t, model.PriorityC, *task.Priority)
		assert.Equal(t, "14:00", *task.ScheduledTime)
	})
}

func TestTaskPatch_Validate(t *testing.T) {
	empty := ""
	assert.ErrorIs(t, model.TaskPatch{Title: &empty}.Validate(), model.ErrTitleRequired)
	assert.ErrorIs(t, model.TaskPatch{Priority: model.Some(model.Priority("Z"))}.Validate(), model.ErrInvalidPriority)
	assert.NoError(t, model.TaskPatch{Priority: model.Some(model.Priority(""))}.Validate())
	assert.NoError(t, model.TaskPatch{}.Validate())
}

func TestTaskList_CloneIsDeep(t *testing.T) {
	// Arrange
	a := model.PriorityA
	at := "09:00"
	list := model.TaskList{{ID: "1", Title: "one", Priority: &a, ScheduledTime: &at}}

	// Act
	clone := list.Clone()
	*clone[0].Priority = model.PriorityC
	*clone[0].ScheduledTime = "18:00"
	clone[0].Title = "changed"

	// Assert
	assert.Equal(t, model.PriorityA, *list[0].Priority)
	assert.Equal(t, "09:00", *list[0].ScheduledTime)
	assert.Equal(t, "one", list[0].Title)
	assert.Empty(t, model.TaskList(nil).Clone())
}
