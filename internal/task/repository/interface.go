package repository

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// Repository is the interface for task row access.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Count(ctx context.Context, status model.TaskStatus) (int, error)

	// DueBetween returns pending, dated tasks with due_at in [from, to].
	DueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error)

	// DueForReminder returns pending, dated, not-yet-reminded tasks with
	// due_at <= now.
	DueForReminder(ctx context.Context, now time.Time) ([]model.Task, error)

	MarkDone(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error

	// Reschedule sets a new due instant and clears reminded_at.
	Reschedule(ctx context.Context, id int64, dueAt time.Time) error

	SetReminded(ctx context.Context, id int64, at time.Time) error
}

// PendingRepository is the single-slot pending task store keyed by chat id.
// Arm replaces any existing slot for the chat (last writer wins).
type PendingRepository interface {
	Get(ctx context.Context, chatID string) (model.PendingTask, bool, error)
	Arm(ctx context.Context, chatID, title string, now time.Time) error
	Clear(ctx context.Context, chatID string) error
}
