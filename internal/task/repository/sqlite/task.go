package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task/repository"
)

const taskColumns = "id, title, due_at, created_at, status, source, reminded_at, notes"

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t          model.Task
		dueAt      sql.NullString
		createdAt  string
		source     sql.NullString
		remindedAt sql.NullString
		notes      sql.NullString
	)
	if err := row.Scan(&t.ID, &t.Title, &dueAt, &createdAt, &t.Status, &source, &remindedAt, &notes); err != nil {
		return model.Task{}, err
	}
	t.DueAt = fromDB(dueAt)
	if at, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = at
	}
	t.Source = source.String
	t.RemindedAt = fromDB(remindedAt)
	t.Notes = notes.String
	return t, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks(title, due_at, created_at, source, notes) VALUES (?, ?, ?, ?, ?)`,
		opt.Title, toDBNull(opt.DueAt), toDB(opt.CreatedAt), opt.Source, opt.Notes,
	)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to insert task: %v", err)
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return r.Detail(ctx, id)
}

func (r *implRepository) Detail(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	return t, err
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE status = ?
		 ORDER BY due_at IS NULL, due_at ASC, created_at DESC LIMIT ?`,
		string(opt.Status), limit,
	)
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to list tasks: %v", err)
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *implRepository) Count(ctx context.Context, status model.TaskStatus) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE status = ?`, string(status)).Scan(&total)
	return total, err
}

func (r *implRepository) DueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE status = 'pending' AND due_at IS NOT NULL AND due_at BETWEEN ? AND ?
		 ORDER BY due_at ASC`,
		toDB(from), toDB(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *implRepository) DueForReminder(ctx context.Context, now time.Time) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE status = 'pending' AND due_at IS NOT NULL AND reminded_at IS NULL AND due_at <= ?
		 ORDER BY due_at ASC`,
		toDB(now),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *implRepository) MarkDone(ctx context.Context, id int64) error {
	return r.affectOne(ctx, `UPDATE tasks SET status = 'done' WHERE id = ?`, id)
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	return r.affectOne(ctx, `DELETE FROM tasks WHERE id = ?`, id)
}

func (r *implRepository) Reschedule(ctx context.Context, id int64, dueAt time.Time) error {
	return r.affectOne(ctx, `UPDATE tasks SET due_at = ?, reminded_at = NULL WHERE id = ?`, toDB(dueAt), id)
}

func (r *implRepository) SetReminded(ctx context.Context, id int64, at time.Time) error {
	return r.affectOne(ctx, `UPDATE tasks SET reminded_at = ? WHERE id = ?`, toDB(at), id)
}

// affectOne runs a statement whose last argument is the row id and maps
// zero affected rows to ErrNotFound.
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

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
