package model

import "time"

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Task is a reminder/task persisted in SQLite.
type Task struct {
	ID         int64
	Title      string
	DueAt      *time.Time // nil when the user never supplied a time
	CreatedAt  time.Time
	Status     TaskStatus
	Source     string // "telegram" or "web"
	RemindedAt *time.Time
	Notes      string
}

// PendingTask is the single-slot draft awaiting a due date for one chat.
type PendingTask struct {
	ID        int64
	ChatID    string
	Title     string
	CreatedAt time.Time
}
