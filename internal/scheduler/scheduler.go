package scheduler

import (
	"context"
	"fmt"
	"time"

	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

// Jobs is the set of recurring jobs the scheduler drives.
type Jobs interface {
	// Reminders runs on every tick.
	Reminders(ctx context.Context)
	// RunScan runs once per day at the configured scan time.
	RunScan(ctx context.Context)
	// Digest runs once per day at the configured digest time.
	Digest(ctx context.Context)
}

// Config holds the scheduler timing. Times are "HH:MM" in the location.
type Config struct {
	ScanAt   string
	DigestAt string
	Location *time.Location
}

// Scheduler runs the recurring jobs on a one-minute tick.
type Scheduler struct {
	l    pkgLog.Logger
	jobs Jobs
	cfg  Config

	scanAt   dayClock
	digestAt dayClock

	lastScanDay   string
	lastDigestDay string
}

// New creates a scheduler. The time strings must be "HH:MM".
func New(l pkgLog.Logger, jobs Jobs, cfg Config) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	scanAt, err := parseDayClock(cfg.ScanAt)
	if err != nil {
		return nil, fmt.Errorf("invalid scan time %q: %w", cfg.ScanAt, err)
	}
	digestAt, err := parseDayClock(cfg.DigestAt)
	if err != nil {
		return nil, fmt.Errorf("invalid digest time %q: %w", cfg.DigestAt, err)
	}

	return &Scheduler{
		l:        l,
		jobs:     jobs,
		cfg:      cfg,
		scanAt:   scanAt,
		digestAt: digestAt,
	}, nil
}

// Run blocks until the context is cancelled, firing jobs on a one-minute
// tick. Reminders fire every tick; scan and digest fire on the first tick
// at or past their configured time, once per local day.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.Infof(ctx, "scheduler: started, scan at %s, digest at %s (%s)",
		s.cfg.ScanAt, s.cfg.DigestAt, s.cfg.Location)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Infof(ctx, "scheduler: stopped")
			return
		case <-ticker.C:
			s.tick(ctx, time.Now().In(s.cfg.Location))
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	s.jobs.Reminders(ctx)

	day := now.Format("2006-01-02")
	if s.lastScanDay != day && s.scanAt.passed(now) {
		s.lastScanDay = day
		s.jobs.RunScan(ctx)
	}
	if s.lastDigestDay != day && s.digestAt.passed(now) {
		s.lastDigestDay = day
		s.jobs.Digest(ctx)
	}
}

// dayClock is a time of day in minutes since midnight.
type dayClock int

func parseDayClock(value string) (dayClock, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, err
	}
	return dayClock(t.Hour()*60 + t.Minute()), nil
}

func (d dayClock) passed(now time.Time) bool {
	return now.Hour()*60+now.Minute() >= int(d)
}
