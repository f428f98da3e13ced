package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/blc10/research-assistant/internal/goal/repository"
	"github.com/blc10/research-assistant/internal/model"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// New creates a sqlite-backed goal repository.
func New(db *sql.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Create(ctx context.Context, title string, year int, createdAt time.Time) (model.Goal, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO goals(title, year, created_at) VALUES (?, ?, ?)`,
		title, year, createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		r.l.Errorf(ctx, "goal repository: failed to insert goal: %v", err)
		return model.Goal{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Goal{}, err
	}
	return model.Goal{
		ID:        id,
		Title:     title,
		Year:      year,
		Status:    model.GoalStatusActive,
		CreatedAt: createdAt,
	}, nil
}

func (r *implRepository) List(ctx context.Context, status model.GoalStatus) ([]model.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, year, status, progress, created_at FROM goals
		 WHERE status = ? ORDER BY year DESC, created_at DESC`,
		string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []model.Goal
	for rows.Next() {
		var (
			g         model.Goal
			createdAt string
		)
		if err := rows.Scan(&g.ID, &g.Title, &g.Year, &g.Status, &g.Progress, &createdAt); err != nil {
			return nil, err
		}
		if at, err := time.Parse(time.RFC3339, createdAt); err == nil {
			g.CreatedAt = at
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *implRepository) UpdateProgress(ctx context.Context, id int64, progress int) error {
	return r.affectOne(ctx, `UPDATE goals SET progress = ? WHERE id = ?`, progress, id)
}

func (r *implRepository) Complete(ctx context.Context, id int64) error {
	return r.affectOne(ctx, `UPDATE goals SET status = 'done', progress = 100 WHERE id = ?`, id)
}

func (r *implRepository) affectOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
