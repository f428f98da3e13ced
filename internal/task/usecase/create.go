package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		Title:     title,
		DueAt:     input.DueAt,
		CreatedAt: time.Now().In(uc.dates.Location()),
		Source:    sc.Source,
		Notes:     input.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task usecase: failed to create task: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task usecase: created task #%d %q", created.ID, created.Title)
	return created, nil
}
