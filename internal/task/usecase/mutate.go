package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/internal/task/repository"
)

func (uc *implUseCase) Done(ctx context.Context, id int64) (model.Task, error) {
	if err := uc.repo.MarkDone(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task usecase: failed to complete task #%d: %v", id, err)
		return model.Task{}, err
	}
	return uc.Detail(ctx, id)
}

func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	err := uc.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to delete task #%d: %v", id, err)
	}
	return err
}

func (uc *implUseCase) Snooze(ctx context.Context, input task.SnoozeInput, now time.Time) (model.Task, error) {
	minutes, ok := intent.ParseDuration(input.RawText)
	if !ok {
		return model.Task{}, task.ErrBadDuration
	}

	current, err := uc.Detail(ctx, input.TaskID)
	if err != nil {
		return model.Task{}, err
	}

	// Push forward from the existing due instant when there is one, so
	// "2 saat" on an overdue task reads relative to its schedule.
	base := now
	if current.DueAt != nil {
		base = *current.DueAt
	}
	newDue := base.Add(time.Duration(minutes) * time.Minute)

	if err := uc.repo.Reschedule(ctx, input.TaskID, newDue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task usecase: failed to snooze task #%d: %v", input.TaskID, err)
		return model.Task{}, err
	}
	return uc.Detail(ctx, input.TaskID)
}
