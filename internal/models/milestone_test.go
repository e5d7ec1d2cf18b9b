package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tasks(completed, total int) []Task {
	out := make([]Task, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, Task{ID: string(rune('a' + i)), Title: "task", Completed: i < completed})
	}
	return out
}

func TestDeriveMilestoneProgress(t *testing.T) {
	tests := []struct {
		name           string
		completed      int
		total          int
		wantProgress   int
		wantStatus     MilestoneStatus
	}{
		{"none completed", 0, 4, 0, StatusNotStarted},
		{"half completed", 2, 4, 50, StatusInProgress},
		{"all completed", 4, 4, 100, StatusCompleted},
		{"one of three rounds", 1, 3, 33, StatusInProgress},
		{"two of three rounds", 2, 3, 67, StatusInProgress},
		{"single task done", 1, 1, 100, StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress, status, derived := DeriveMilestoneProgress(tasks(tt.completed, tt.total))
			assert.True(t, derived)
			assert.Equal(t, tt.wantProgress, progress)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestDeriveMilestoneProgress_NoTasks(t *testing.T) {
	_, _, derived := DeriveMilestoneProgress(nil)
	assert.False(t, derived, "empty task list must leave caller-supplied progress alone")
}

func TestMilestoneRecalculate_TaskToggleLifecycle(t *testing.T) {
	m := &Milestone{
		Title:    "Learn Go",
		Category: CategoryStudy,
		Status:   StatusNotStarted,
		Tasks:    tasks(0, 4),
	}

	m.Recalculate()
	assert.Equal(t, 0, m.Progress)
	assert.Equal(t, StatusNotStarted, m.Status)

	m.Tasks[0].Completed = true
	m.Tasks[1].Completed = true
	m.Recalculate()
	assert.Equal(t, 50, m.Progress)
	assert.Equal(t, StatusInProgress, m.Status)

	m.Tasks[2].Completed = true
	m.Tasks[3].Completed = true
	m.Recalculate()
	assert.Equal(t, 100, m.Progress)
	assert.Equal(t, StatusCompleted, m.Status)
}

func TestMilestoneRecalculate_EmptyTasksKeepsManualProgress(t *testing.T) {
	m := &Milestone{Progress: 40, Status: StatusInProgress}
	m.Recalculate()
	assert.Equal(t, 40, m.Progress)
	assert.Equal(t, StatusInProgress, m.Status)
}
