package models

import "math"

// Category classifies a milestone on the roadmap.
type Category string

const (
	CategoryStudy       Category = "study"
	CategoryCertificate Category = "certificate"
	CategoryProject     Category = "project"
	CategoryActivity    Category = "activity"
	CategoryJobPrep     Category = "job-prep"
)

// MilestoneStatus tracks roadmap progress. It auto-transitions with progress
// once a milestone has tasks.
type MilestoneStatus string

const (
	StatusNotStarted MilestoneStatus = "not-started"
	StatusInProgress MilestoneStatus = "in-progress"
	StatusCompleted  MilestoneStatus = "completed"
)

// Task is a checklist entry inside a milestone. Tasks have no independent
// lifecycle; they are created and removed only through milestone updates.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
}

// Milestone is a long-running career goal with a date range and a checklist.
type Milestone struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Status      MilestoneStatus `json:"status"`
	Progress    int             `json:"progress"`
	Tasks       []Task          `json:"tasks"`
	Order       int             `json:"order"`
}

// MilestoneUpdate carries a partial milestone change. Nil fields are left
// unchanged. When Tasks is present the store recomputes Progress and Status
// before writing, so callers never set those two alongside Tasks.
type MilestoneUpdate struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *Category        `json:"category,omitempty" validate:"omitempty,oneof=study certificate project activity job-prep"`
	StartDate   *string          `json:"startDate,omitempty"`
	EndDate     *string          `json:"endDate,omitempty"`
	Status      *MilestoneStatus `json:"status,omitempty" validate:"omitempty,oneof=not-started in-progress completed"`
	Progress    *int             `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	Tasks       *[]Task          `json:"tasks,omitempty"`
	Order       *int             `json:"order,omitempty"`
}

// DeriveMilestoneProgress computes progress and status from a task list.
// The derived reports whether a derivation happened: with no tasks the
// caller-supplied progress and status stand.
func DeriveMilestoneProgress(tasks []Task) (progress int, status MilestoneStatus, derived bool) {
	total := len(tasks)
	if total == 0 {
		return 0, "", false
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	progress = int(math.Round(100 * float64(completed) / float64(total)))
	switch {
	case progress == 100:
		status = StatusCompleted
	case progress > 0:
		status = StatusInProgress
	default:
		status = StatusNotStarted
	}
	return progress, status, true
}

// Recalculate refreshes Progress and Status from Tasks when tasks exist.
func (m *Milestone) Recalculate() {
	if progress, status, ok := DeriveMilestoneProgress(m.Tasks); ok {
		m.Progress = progress
		m.Status = status
	}
}

// RoadmapStep is one entry of a career guide's milestone template.
type RoadmapStep struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	DurationDays int      `json:"durationDays"`
}
