package paper

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// UseCase defines the business logic interface for the paper domain.
type UseCase interface {
	// Scan fetches papers for the configured keywords from all feeds,
	// stores the new ones and analyzes as many as the daily budget allows.
	Scan(ctx context.Context) (ScanOutput, error)

	// List returns papers in the given status, most relevant first.
	// A nil status lists across statuses by publication date.
	List(ctx context.Context, status *model.PaperStatus, limit int) ([]model.Paper, error)

	// Latest returns the most recently published papers.
	Latest(ctx context.Context, limit int) ([]model.Paper, error)

	// Detail returns one paper by id.
	Detail(ctx context.Context, id int64) (model.Paper, error)

	// MarkRead flips a paper to read and records the read for streaks.
	MarkRead(ctx context.Context, id int64, now time.Time) error

	// Digest collects the best papers fetched in the last day plus the
	// current read streak.
	Digest(ctx context.Context, now time.Time) (DigestOutput, error)

	// ReadStreak counts consecutive days, ending today or yesterday's run
	// up to today, with at least one read.
	ReadStreak(ctx context.Context, now time.Time) (int, error)

	// Count returns how many papers are in the given status; nil counts all.
	Count(ctx context.Context, status *model.PaperStatus) (int, error)
}
