package task

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create stores a new task. The scope's source is recorded on the row.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Detail returns one task by id.
	Detail(ctx context.Context, id int64) (model.Task, error)

	// List returns tasks in the given status, soonest due first.
	List(ctx context.Context, status model.TaskStatus, limit int) ([]model.Task, error)

	// Open returns every pending task, for candidate resolution and pickers.
	Open(ctx context.Context) ([]model.Task, error)

	// DueToday returns pending tasks due between now and end of day.
	DueToday(ctx context.Context, now time.Time) ([]model.Task, error)

	// DueThisWeek returns pending tasks due between now and end of week.
	DueThisWeek(ctx context.Context, now time.Time) ([]model.Task, error)

	// Done marks a task completed.
	Done(ctx context.Context, id int64) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id int64) error

	// Snooze parses a duration out of input text and pushes the task's due
	// instant that far past now, clearing any sent reminder.
	Snooze(ctx context.Context, input SnoozeInput, now time.Time) (model.Task, error)

	// Summary aggregates counts and upcoming tasks for the status report.
	Summary(ctx context.Context, now time.Time) (SummaryOutput, error)

	// DueReminders returns pending, dated, not-yet-reminded tasks whose due
	// instant has passed.
	DueReminders(ctx context.Context, now time.Time) ([]model.Task, error)

	// MarkReminded records that a reminder was sent for the task.
	MarkReminded(ctx context.Context, id int64, at time.Time) error
}
