package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/internal/paper/repository"
)

func (uc *implUseCase) List(ctx context.Context, status *model.PaperStatus, limit int) ([]model.Paper, error) {
	if limit <= 0 {
		limit = 50
	}
	if status == nil {
		return uc.repo.ListAll(ctx, limit)
	}
	return uc.repo.List(ctx, *status, limit)
}

func (uc *implUseCase) Latest(ctx context.Context, limit int) ([]model.Paper, error) {
	if limit <= 0 {
		limit = 5
	}
	return uc.repo.Latest(ctx, limit)
}

func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Paper, error) {
	p, err := uc.repo.Detail(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Paper{}, paper.ErrPaperNotFound
	}
	return p, err
}

func (uc *implUseCase) MarkRead(ctx context.Context, id int64, now time.Time) error {
	err := uc.repo.MarkRead(ctx, id, now)
	if errors.Is(err, repository.ErrNotFound) {
		return paper.ErrPaperNotFound
	}
	return err
}

func (uc *implUseCase) Count(ctx context.Context, status *model.PaperStatus) (int, error) {
	return uc.repo.Count(ctx, status)
}
