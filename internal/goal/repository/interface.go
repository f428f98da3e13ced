package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

var ErrNotFound = errors.New("record not found")

// Repository is the interface for goal row access.
type Repository interface {
	Create(ctx context.Context, title string, year int, createdAt time.Time) (model.Goal, error)
	List(ctx context.Context, status model.GoalStatus) ([]model.Goal, error)
	UpdateProgress(ctx context.Context, id int64, progress int) error
	Complete(ctx context.Context, id int64) error
}
