package usecase

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
)

func (uc *implUseCase) Summary(ctx context.Context, now time.Time) (task.SummaryOutput, error) {
	pending, err := uc.repo.Count(ctx, model.TaskStatusPending)
	if err != nil {
		return task.SummaryOutput{}, err
	}
	done, err := uc.repo.Count(ctx, model.TaskStatusDone)
	if err != nil {
		return task.SummaryOutput{}, err
	}

	today, err := uc.DueToday(ctx, now)
	if err != nil {
		return task.SummaryOutput{}, err
	}
	week, err := uc.DueThisWeek(ctx, now)
	if err != nil {
		return task.SummaryOutput{}, err
	}

	// Overdue: dated pending tasks already past, reminded or not.
	overdue, err := uc.repo.DueBetween(ctx, now.AddDate(-1, 0, 0), now)
	if err != nil {
		return task.SummaryOutput{}, err
	}

	return task.SummaryOutput{
		PendingCount: pending,
		DoneCount:    done,
		DueToday:     today,
		DueThisWeek:  week,
		Overdue:      overdue,
	}, nil
}
