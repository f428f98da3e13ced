package scheduler

import (
	"context"
	"testing"
	"time"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type countingJobs struct {
	reminders int
	scans     int
	digests   int
}

func (j *countingJobs) Reminders(ctx context.Context) { j.reminders++ }
func (j *countingJobs) RunScan(ctx context.Context)   { j.scans++ }
func (j *countingJobs) Digest(ctx context.Context)    { j.digests++ }

func newTestScheduler(t *testing.T, jobs Jobs) *Scheduler {
	t.Helper()
	s, err := New(mockLogger{}, jobs, Config{
		ScanAt:   "07:30",
		DigestAt: "08:30",
		Location: time.UTC,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewRejectsBadTime(t *testing.T) {
	if _, err := New(mockLogger{}, &countingJobs{}, Config{ScanAt: "7h30", DigestAt: "08:30"}); err == nil {
		t.Fatal("New() expected error for bad scan time")
	}
	if _, err := New(mockLogger{}, &countingJobs{}, Config{ScanAt: "07:30", DigestAt: "25:00"}); err == nil {
		t.Fatal("New() expected error for bad digest time")
	}
}

func TestTickFiresRemindersEveryTime(t *testing.T) {
	jobs := &countingJobs{}
	s := newTestScheduler(t, jobs)

	at := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s.tick(context.Background(), at.Add(time.Duration(i)*time.Minute))
	}

	if jobs.reminders != 3 {
		t.Errorf("reminders = %d, want 3", jobs.reminders)
	}
	if jobs.scans != 0 || jobs.digests != 0 {
		t.Errorf("scans = %d, digests = %d, want 0 before scheduled time", jobs.scans, jobs.digests)
	}
}

func TestTickFiresDailyJobsOncePerDay(t *testing.T) {
	jobs := &countingJobs{}
	s := newTestScheduler(t, jobs)

	// ticks across the scan time fire the scan exactly once
	for _, clock := range []string{"07:29", "07:30", "07:31", "09:00"} {
		parsed, _ := time.Parse("15:04", clock)
		at := time.Date(2024, 5, 1, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
		s.tick(context.Background(), at)
	}
	if jobs.scans != 1 {
		t.Errorf("scans = %d, want 1", jobs.scans)
	}
	if jobs.digests != 1 {
		t.Errorf("digests = %d, want 1", jobs.digests)
	}

	// next day fires again
	s.tick(context.Background(), time.Date(2024, 5, 2, 7, 30, 0, 0, time.UTC))
	if jobs.scans != 2 {
		t.Errorf("scans = %d after next day, want 2", jobs.scans)
	}
}

func TestTickCatchesUpLateStart(t *testing.T) {
	jobs := &countingJobs{}
	s := newTestScheduler(t, jobs)

	// first tick long after both times fires both jobs
	s.tick(context.Background(), time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	if jobs.scans != 1 || jobs.digests != 1 {
		t.Errorf("scans = %d, digests = %d, want 1 each on late start", jobs.scans, jobs.digests)
	}
}
