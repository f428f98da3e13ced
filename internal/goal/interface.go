package goal

import (
	"context"

	"github.com/blc10/research-assistant/internal/model"
)

// UseCase defines the business logic interface for the goal domain.
type UseCase interface {
	// Create adds a yearly goal.
	Create(ctx context.Context, title string, year int) (model.Goal, error)

	// List returns goals in the given status, newest year first.
	List(ctx context.Context, status model.GoalStatus) ([]model.Goal, error)

	// UpdateProgress sets the goal's progress percentage.
	UpdateProgress(ctx context.Context, id int64, progress int) error

	// Complete marks the goal done at full progress.
	Complete(ctx context.Context, id int64) error
}
