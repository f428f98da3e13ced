package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task/repository"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implPendingRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

// NewPending creates the sqlite-backed single-slot pending task store.
func NewPending(db *sql.DB, l pkgLog.Logger) repository.PendingRepository {
	return &implPendingRepository{db: db, l: l}
}

func (r *implPendingRepository) Get(ctx context.Context, chatID string) (model.PendingTask, bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, chat_id, title, created_at FROM pending_tasks
		 WHERE chat_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		chatID,
	)

	var (
		p         model.PendingTask
		createdAt string
	)
	err := row.Scan(&p.ID, &p.ChatID, &p.Title, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PendingTask{}, false, nil
	}
	if err != nil {
		return model.PendingTask{}, false, err
	}
	if at, perr := time.Parse(time.RFC3339, createdAt); perr == nil {
		p.CreatedAt = at
	}
	return p, true, nil
}

// Arm replaces any existing slot for the chat: delete then insert, in one
// transaction so a crash cannot leave the chat with two drafts.
func (r *implPendingRepository) Arm(ctx context.Context, chatID, title string, now time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM pending_tasks WHERE chat_id = ?`, chatID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO pending_tasks(chat_id, title, created_at) VALUES (?, ?, ?)`,
		chatID, title, toDB(now),
	); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *implPendingRepository) Clear(ctx context.Context, chatID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pending_tasks WHERE chat_id = ?`, chatID)
	return err
}
