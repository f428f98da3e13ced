package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blc10/research-assistant/internal/goal"
	"github.com/blc10/research-assistant/internal/goal/repository"
	"github.com/blc10/research-assistant/internal/model"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new goal UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) goal.UseCase {
	return &implUseCase{l: l, repo: repo}
}

func (uc *implUseCase) Create(ctx context.Context, title string, year int) (model.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Goal{}, goal.ErrEmptyTitle
	}
	if year < 2000 || year > 2100 {
		return model.Goal{}, goal.ErrBadYear
	}

	created, err := uc.repo.Create(ctx, title, year, time.Now())
	if err != nil {
		return model.Goal{}, err
	}
	uc.l.Infof(ctx, "goal usecase: created goal #%d for %d", created.ID, created.Year)
	return created, nil
}

func (uc *implUseCase) List(ctx context.Context, status model.GoalStatus) ([]model.Goal, error) {
	return uc.repo.List(ctx, status)
}

func (uc *implUseCase) UpdateProgress(ctx context.Context, id int64, progress int) error {
	if progress < 0 || progress > 100 {
		return goal.ErrBadProgress
	}
	err := uc.repo.UpdateProgress(ctx, id, progress)
	if errors.Is(err, repository.ErrNotFound) {
		return goal.ErrGoalNotFound
	}
	return err
}

func (uc *implUseCase) Complete(ctx context.Context, id int64) error {
	err := uc.repo.Complete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return goal.ErrGoalNotFound
	}
	return err
}
