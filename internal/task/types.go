package task

import (
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// CreateInput is the input for creating a single task.
type CreateInput struct {
	Title string
	DueAt *time.Time // nil for undated tasks
	Notes string
}

// SnoozeInput pushes a task's due instant forward from now.
type SnoozeInput struct {
	TaskID  int64
	RawText string // free text carrying a duration, e.g. "2 saat"
}

// SummaryOutput aggregates the task side of the daily status report.
type SummaryOutput struct {
	PendingCount int
	DoneCount    int
	DueToday     []model.Task
	DueThisWeek  []model.Task
	Overdue      []model.Task
}
