package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/paper/repository"
)

const paperColumns = "id, source, source_id, title, abstract, url, authors, published_at, fetched_at, relevance_score, summary, tags, status"

// Ranking used by digest and status listings: analyzed papers first by
// score, then newest publication date.
const relevanceOrder = "relevance_score IS NULL, relevance_score DESC, published_at DESC"

func scanPaper(row interface{ Scan(...any) error }) (model.Paper, error) {
	var (
		p         model.Paper
		abstract  sql.NullString
		url       sql.NullString
		authors   sql.NullString
		published sql.NullString
		fetchedAt string
		relevance sql.NullFloat64
		summary   sql.NullString
		tags      sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Source, &p.SourceID, &p.Title, &abstract, &url, &authors,
		&published, &fetchedAt, &relevance, &summary, &tags, &p.Status); err != nil {
		return model.Paper{}, err
	}
	p.Abstract = abstract.String
	p.URL = url.String
	p.Authors = authors.String
	p.PublishedAt = published.String
	if at, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		p.FetchedAt = at
	}
	if relevance.Valid {
		v := relevance.Float64
		p.Relevance = &v
	}
	p.Summary = summary.String
	p.Tags = tags.String
	return p, nil
}

func (r *implRepository) Store(ctx context.Context, opt repository.StoreOptions) (int64, bool, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO papers(source, source_id, title, abstract, url, authors, published_at, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		opt.Source, opt.SourceID, opt.Title, opt.Abstract, opt.URL, opt.Authors, opt.PublishedAt, toDB(opt.FetchedAt),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, false, nil
		}
		r.l.Errorf(ctx, "paper repository: failed to insert paper %s/%s: %v", opt.Source, opt.SourceID, err)
		return 0, false, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *implRepository) Detail(ctx context.Context, id int64) (model.Paper, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paperColumns+` FROM papers WHERE id = ?`, id)
	p, err := scanPaper(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Paper{}, repository.ErrNotFound
	}
	return p, err
}

func (r *implRepository) List(ctx context.Context, status model.PaperStatus, limit int) ([]model.Paper, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paperColumns+` FROM papers WHERE status = ? ORDER BY `+relevanceOrder+` LIMIT ?`,
		string(status), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPapers(rows)
}

func (r *implRepository) ListAll(ctx context.Context, limit int) ([]model.Paper, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paperColumns+` FROM papers ORDER BY published_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPapers(rows)
}

func (r *implRepository) ListFetchedSince(ctx context.Context, since time.Time, limit int) ([]model.Paper, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paperColumns+` FROM papers WHERE fetched_at >= ? ORDER BY `+relevanceOrder+` LIMIT ?`,
		toDB(since), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPapers(rows)
}

func (r *implRepository) Latest(ctx context.Context, limit int) ([]model.Paper, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paperColumns+` FROM papers
		 ORDER BY published_at IS NULL, published_at DESC, fetched_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPapers(rows)
}

func (r *implRepository) UpdateAnalysis(ctx context.Context, id int64, opt repository.AnalysisOptions) error {
	var relevance any
	if opt.Relevance != nil {
		relevance = *opt.Relevance
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE papers SET relevance_score = ?, summary = ?, tags = ? WHERE id = ?`,
		relevance, opt.Summary, opt.Tags, id,
	)
	return err
}

func (r *implRepository) MarkRead(ctx context.Context, id int64, readAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE papers SET status = 'read' WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		_ = tx.Rollback()
		if err != nil {
			return err
		}
		return repository.ErrNotFound
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO reads(paper_id, read_at) VALUES (?, ?)`, id, toDB(readAt)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *implRepository) Count(ctx context.Context, status *model.PaperStatus) (int, error) {
	var (
		total int
		err   error
	)
	if status != nil {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers WHERE status = ?`, string(*status)).Scan(&total)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM papers`).Scan(&total)
	}
	return total, err
}

func (r *implRepository) ReadDays(ctx context.Context, loc *time.Location) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT read_at FROM reads ORDER BY read_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[time.Time]struct{})
	var days []time.Time
	for rows.Next() {
		var readAt string
		if err := rows.Scan(&readAt); err != nil {
			return nil, err
		}
		at, err := time.Parse(time.RFC3339, readAt)
		if err != nil {
			continue
		}
		local := at.In(loc)
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days, rows.Err()
}

func collectPapers(rows *sql.Rows) ([]model.Paper, error) {
	var papers []model.Paper
	for rows.Next() {
		p, err := scanPaper(rows)
		if err != nil {
			return nil, err
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
