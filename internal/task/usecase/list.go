package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/internal/task/repository"
)

// openTaskLimit caps how many pending tasks candidate resolution sees.
const openTaskLimit = 100

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	t, err := uc.repo.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, err
}

func (uc *implUseCase) List(ctx context.Context, status model.TaskStatus, limit int) ([]model.Task, error) {
	return uc.repo.List(ctx, repository.ListOptions{Status: status, Limit: limit})
}

func (uc *implUseCase) Open(ctx context.Context) ([]model.Task, error) {
	return uc.repo.List(ctx, repository.ListOptions{Status: model.TaskStatusPending, Limit: openTaskLimit})
}

func (uc *implUseCase) DueToday(ctx context.Context, now time.Time) ([]model.Task, error) {
	return uc.repo.DueBetween(ctx, now, uc.dates.EndOfDay(now))
}

func (uc *implUseCase) DueThisWeek(ctx context.Context, now time.Time) ([]model.Task, error) {
	return uc.repo.DueBetween(ctx, now, uc.dates.EndOfWeek(now))
}
