package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/internal/task/repository"
	"github.com/blc10/research-assistant/pkg/datemath"
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

// mockRepo routes each method through an optional func field.
type mockRepo struct {
	createFn     func(opt repository.CreateOptions) (model.Task, error)
	detailFn     func(id int64) (model.Task, error)
	listFn       func(opt repository.ListOptions) ([]model.Task, error)
	countFn      func(status model.TaskStatus) (int, error)
	dueBetweenFn func(from, to time.Time) ([]model.Task, error)
	markDoneFn   func(id int64) error
	deleteFn     func(id int64) error
	rescheduleFn func(id int64, dueAt time.Time) error
}

func (m *mockRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	return m.createFn(opt)
}
func (m *mockRepo) Detail(ctx context.Context, id int64) (model.Task, error) {
	return m.detailFn(id)
}
func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	return m.listFn(opt)
}
func (m *mockRepo) Count(ctx context.Context, status model.TaskStatus) (int, error) {
	return m.countFn(status)
}
func (m *mockRepo) DueBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	return m.dueBetweenFn(from, to)
}
func (m *mockRepo) DueForReminder(ctx context.Context, now time.Time) ([]model.Task, error) {
	return nil, nil
}
func (m *mockRepo) MarkDone(ctx context.Context, id int64) error { return m.markDoneFn(id) }
func (m *mockRepo) Delete(ctx context.Context, id int64) error   { return m.deleteFn(id) }
func (m *mockRepo) Reschedule(ctx context.Context, id int64, dueAt time.Time) error {
	return m.rescheduleFn(id, dueAt)
}
func (m *mockRepo) SetReminded(ctx context.Context, id int64, at time.Time) error { return nil }

func newTestUseCase(t *testing.T, repo *mockRepo) task.UseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return New(mockLogger{}, repo, dates)
}

func TestCreate(t *testing.T) {
	t.Run("empty title rejected", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})
		_, err := uc.Create(context.Background(), model.Scope{}, task.CreateInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Fatalf("Create() error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("trims title and records source", func(t *testing.T) {
		var got repository.CreateOptions
		repo := &mockRepo{
			createFn: func(opt repository.CreateOptions) (model.Task, error) {
				got = opt
				return model.Task{ID: 1, Title: opt.Title}, nil
			},
		}
		uc := newTestUseCase(t, repo)

		created, err := uc.Create(context.Background(),
			model.Scope{ChatID: "42", Source: "telegram"},
			task.CreateInput{Title: "  Tez bölümünü bitir  "})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.Title != "Tez bölümünü bitir" {
			t.Errorf("stored title = %q, want trimmed", got.Title)
		}
		if got.Source != "telegram" {
			t.Errorf("stored source = %q, want telegram", got.Source)
		}
		if created.ID != 1 {
			t.Errorf("created.ID = %d, want 1", created.ID)
		}
	})
}

func TestDone(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo := &mockRepo{
			markDoneFn: func(id int64) error { return repository.ErrNotFound },
		}
		uc := newTestUseCase(t, repo)
		if _, err := uc.Done(context.Background(), 9); !errors.Is(err, task.ErrTaskNotFound) {
			t.Fatalf("Done() error = %v, want ErrTaskNotFound", err)
		}
	})

	t.Run("returns updated task", func(t *testing.T) {
		repo := &mockRepo{
			markDoneFn: func(id int64) error { return nil },
			detailFn: func(id int64) (model.Task, error) {
				return model.Task{ID: id, Status: model.TaskStatusDone}, nil
			},
		}
		uc := newTestUseCase(t, repo)
		done, err := uc.Done(context.Background(), 3)
		if err != nil {
			t.Fatalf("Done() error = %v", err)
		}
		if done.Status != model.TaskStatusDone {
			t.Errorf("status = %q, want done", done.Status)
		}
	})
}

func TestSnooze(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("unparseable duration", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{})
		_, err := uc.Snooze(context.Background(), task.SnoozeInput{TaskID: 1, RawText: "sonra"}, now)
		if !errors.Is(err, task.ErrBadDuration) {
			t.Fatalf("Snooze() error = %v, want ErrBadDuration", err)
		}
	})

	t.Run("bases on existing due instant", func(t *testing.T) {
		due := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		var rescheduled time.Time
		repo := &mockRepo{
			detailFn: func(id int64) (model.Task, error) {
				return model.Task{ID: id, Title: "Okuma", DueAt: &due}, nil
			},
			rescheduleFn: func(id int64, dueAt time.Time) error {
				rescheduled = dueAt
				return nil
			},
		}
		uc := newTestUseCase(t, repo)

		if _, err := uc.Snooze(context.Background(), task.SnoozeInput{TaskID: 1, RawText: "30 dakika"}, now); err != nil {
			t.Fatalf("Snooze() error = %v", err)
		}
		want := due.Add(30 * time.Minute)
		if !rescheduled.Equal(want) {
			t.Errorf("rescheduled to %v, want %v", rescheduled, want)
		}
	})

	t.Run("undated task bases on now", func(t *testing.T) {
		var rescheduled time.Time
		repo := &mockRepo{
			detailFn: func(id int64) (model.Task, error) {
				return model.Task{ID: id, Title: "Okuma"}, nil
			},
			rescheduleFn: func(id int64, dueAt time.Time) error {
				rescheduled = dueAt
				return nil
			},
		}
		uc := newTestUseCase(t, repo)

		if _, err := uc.Snooze(context.Background(), task.SnoozeInput{TaskID: 1, RawText: "2 saat"}, now); err != nil {
			t.Fatalf("Snooze() error = %v", err)
		}
		want := now.Add(2 * time.Hour)
		if !rescheduled.Equal(want) {
			t.Errorf("rescheduled to %v, want %v", rescheduled, want)
		}
	})
}

func TestSummary(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(2 * time.Hour)

	repo := &mockRepo{
		countFn: func(status model.TaskStatus) (int, error) {
			if status == model.TaskStatusPending {
				return 4, nil
			}
			return 7, nil
		},
		dueBetweenFn: func(from, to time.Time) ([]model.Task, error) {
			if to.Before(now) || to.Equal(now) {
				return nil, nil // overdue window
			}
			return []model.Task{{ID: 1, Title: "Sunum", DueAt: &due}}, nil
		},
	}
	uc := newTestUseCase(t, repo)

	out, err := uc.Summary(context.Background(), now)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if out.PendingCount != 4 || out.DoneCount != 7 {
		t.Errorf("counts = (%d, %d), want (4, 7)", out.PendingCount, out.DoneCount)
	}
	if len(out.DueToday) != 1 || len(out.DueThisWeek) != 1 {
		t.Errorf("DueToday = %d, DueThisWeek = %d, want 1 each", len(out.DueToday), len(out.DueThisWeek))
	}
	if len(out.Overdue) != 0 {
		t.Errorf("Overdue = %d, want 0", len(out.Overdue))
	}
}
