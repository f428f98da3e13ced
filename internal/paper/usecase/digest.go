package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/blc10/research-assistant/internal/paper"
)

func (uc *implUseCase) Digest(ctx context.Context, now time.Time) (paper.DigestOutput, error) {
	limit := uc.cfg.MaxPapersPerDay
	if limit <= 0 {
		limit = 20
	}

	papers, err := uc.repo.ListFetchedSince(ctx, now.Add(-24*time.Hour), limit)
	if err != nil {
		return paper.DigestOutput{}, err
	}

	streak, err := uc.ReadStreak(ctx, now)
	if err != nil {
		uc.l.Warnf(ctx, "paper digest: failed to compute read streak: %v", err)
		streak = 0
	}

	return paper.DigestOutput{
		Papers:     papers,
		NewCount:   len(papers),
		ReadStreak: streak,
	}, nil
}

// ReadStreak counts back from the most recent read day, one for each
// consecutive day with at least one recorded read, stopping at the first
// gap. A run that ended yesterday still counts today.
func (uc *implUseCase) ReadStreak(ctx context.Context, now time.Time) (int, error) {
	loc := uc.dates.Location()
	days, err := uc.repo.ReadDays(ctx, loc)
	if err != nil {
		return 0, err
	}
	if len(days) == 0 {
		return 0, nil
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	local := now.In(loc)
	expected := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	// No read yet today keeps the streak alive until midnight.
	if !days[0].Equal(expected) {
		expected = expected.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if day.Equal(expected) {
			streak++
			expected = expected.AddDate(0, 0, -1)
		} else if day.Before(expected) {
			break
		}
	}
	return streak, nil
}
