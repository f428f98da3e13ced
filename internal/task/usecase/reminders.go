package usecase

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

func (uc *implUseCase) DueReminders(ctx context.Context, now time.Time) ([]model.Task, error) {
	return uc.repo.DueForReminder(ctx, now)
}

func (uc *implUseCase) MarkReminded(ctx context.Context, id int64, at time.Time) error {
	return uc.repo.SetReminded(ctx, id, at)
}
