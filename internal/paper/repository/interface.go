package repository

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// Repository is the interface for paper row access.
type Repository interface {
	// Store inserts a paper; a (source, source_id) duplicate is skipped and
	// reported with created=false.
	Store(ctx context.Context, opt StoreOptions) (id int64, created bool, err error)

	Detail(ctx context.Context, id int64) (model.Paper, error)

	// List returns papers in status ordered by relevance then recency.
	List(ctx context.Context, status model.PaperStatus, limit int) ([]model.Paper, error)

	// ListAll returns papers across statuses by publication date.
	ListAll(ctx context.Context, limit int) ([]model.Paper, error)

	// ListFetchedSince returns papers fetched at or after the given instant,
	// ordered by relevance then recency.
	ListFetchedSince(ctx context.Context, since time.Time, limit int) ([]model.Paper, error)

	// Latest returns papers by publication date, newest first.
	Latest(ctx context.Context, limit int) ([]model.Paper, error)

	UpdateAnalysis(ctx context.Context, id int64, opt AnalysisOptions) error

	// MarkRead flips the status and appends a row to reads.
	MarkRead(ctx context.Context, id int64, readAt time.Time) error

	Count(ctx context.Context, status *model.PaperStatus) (int, error)

	// ReadDays returns the distinct local dates with at least one read,
	// newest first.
	ReadDays(ctx context.Context, loc *time.Location) ([]time.Time, error)
}

// StoreOptions holds the parameters for inserting a paper row.
type StoreOptions struct {
	Source      string
	SourceID    string
	Title       string
	Abstract    string
	URL         string
	Authors     string
	PublishedAt string
	FetchedAt   time.Time
}

// AnalysisOptions carries the model's verdict on a paper.
type AnalysisOptions struct {
	Relevance *float64
	Summary   string
	Tags      string
}
