package intent_test

import (
	"context"
	"testing"
	"time"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memoryPending is an in-memory single-slot pending store.
type memoryPending struct {
	slots map[string]model.PendingTask
}

func newMemoryPending() *memoryPending {
	return &memoryPending{slots: make(map[string]model.PendingTask)}
}

func (m *memoryPending) Get(ctx context.Context, chatID string) (model.PendingTask, bool, error) {
	p, ok := m.slots[chatID]
	return p, ok, nil
}

func (m *memoryPending) Arm(ctx context.Context, chatID, title string, now time.Time) error {
	m.slots[chatID] = model.PendingTask{ChatID: chatID, Title: title, CreatedAt: now}
	return nil
}

func (m *memoryPending) Clear(ctx context.Context, chatID string) error {
	delete(m.slots, chatID)
	return nil
}

func newTestEngine(t *testing.T, pending intent.PendingStore) *intent.Engine {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	return intent.NewEngine(&mockLogger{}, dates, intent.DefaultKeywords(), pending)
}

func msg(text string) intent.Message {
	return intent.Message{ChatID: "chat-1", Text: text, Now: testNow()}
}

func TestHandleCreateTask(t *testing.T) {
	pending := newMemoryPending()
	engine := newTestEngine(t, pending)

	action := engine.Handle(context.Background(), msg("Bana yarın 15:00 danışman toplantısını hatırlat"), nil)
	if action.Type != intent.ActionCreateTask {
		t.Fatalf("action type = %v, want ActionCreateTask", action.Type)
	}
	if action.Title != "Danışman toplantısını." {
		t.Errorf("title = %q, want %q", action.Title, "Danışman toplantısını.")
	}
	want := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	if !action.DueAt.Equal(want) {
		t.Errorf("due = %v, want %v", action.DueAt, want)
	}
	if _, ok := pending.slots["chat-1"]; ok {
		t.Error("pending slot armed for a message that carried a date")
	}
}

func TestHandlePendingRoundTrip(t *testing.T) {
	pending := newMemoryPending()
	engine := newTestEngine(t, pending)
	ctx := context.Background()

	// Task-like message without a date arms the slot and asks for one.
	action := engine.Handle(ctx, msg("danışman toplantısını hatırlat"), nil)
	if action.Type != intent.ActionAskForDate {
		t.Fatalf("first action type = %v, want ActionAskForDate", action.Type)
	}
	armed, ok := pending.slots["chat-1"]
	if !ok {
		t.Fatal("pending slot not armed")
	}
	if armed.Title != "Danışman toplantısını." {
		t.Errorf("armed title = %q, want %q", armed.Title, "Danışman toplantısını.")
	}

	// A dateless reply keeps the slot armed and repeats the question.
	action = engine.Handle(ctx, msg("bilmiyorum"), nil)
	if action.Type != intent.ActionAskForDate {
		t.Fatalf("second action type = %v, want ActionAskForDate", action.Type)
	}
	if _, ok := pending.slots["chat-1"]; !ok {
		t.Fatal("pending slot cleared by a dateless reply")
	}

	// A reply carrying a date finalizes the draft and clears the slot.
	action = engine.Handle(ctx, msg("yarın 10:00"), nil)
	if action.Type != intent.ActionCreateTask {
		t.Fatalf("third action type = %v, want ActionCreateTask", action.Type)
	}
	if action.Title != "Danışman toplantısını." {
		t.Errorf("created title = %q, want armed title", action.Title)
	}
	want := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	if !action.DueAt.Equal(want) {
		t.Errorf("due = %v, want %v", action.DueAt, want)
	}
	if _, ok := pending.slots["chat-1"]; ok {
		t.Error("pending slot not cleared after task creation")
	}
}

func TestHandlePendingDraftKeptOnTaskLikeReply(t *testing.T) {
	pending := newMemoryPending()
	engine := newTestEngine(t, pending)
	ctx := context.Background()

	engine.Handle(ctx, msg("tez önerisini bitir"), nil)
	first := pending.slots["chat-1"].Title

	// The armed slot reads the next message as a date answer; a task-like
	// message without a date re-asks but keeps the original draft.
	engine.Handle(ctx, msg("makaleyi oku görev"), nil)
	if pending.slots["chat-1"].Title != first {
		t.Errorf("armed title changed to %q, want %q kept", pending.slots["chat-1"].Title, first)
	}
}

func TestHandleSummary(t *testing.T) {
	engine := newTestEngine(t, newMemoryPending())

	action := engine.Handle(context.Background(), msg("Bana bir özet çıkar"), nil)
	if action.Type != intent.ActionShowSummary {
		t.Fatalf("action type = %v, want ActionShowSummary", action.Type)
	}
}

func TestHandleTaskReference(t *testing.T) {
	due := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)
	openTasks := []model.Task{
		{ID: 1, Title: "Danışman toplantısı", DueAt: &due},
		{ID: 2, Title: "Market alışverişi"},
		{ID: 3, Title: "Makale oku"},
		{ID: 4, Title: "Makale gönder"},
	}

	tests := []struct {
		name     string
		text     string
		tasks    []model.Task
		wantType intent.ActionType
		wantKind intent.ActionKind
		wantID   int64
		wantLen  int
	}{
		{
			name:     "Explicit id confirms directly",
			text:     "görev #2 sil",
			tasks:    openTasks,
			wantType: intent.ActionConfirm,
			wantKind: intent.KindDelete,
			wantID:   2,
		},
		{
			name:     "Single candidate confirms",
			text:     "danışman toplantısını sil",
			tasks:    openTasks,
			wantType: intent.ActionConfirm,
			wantKind: intent.KindDelete,
			wantID:   1,
		},
		{
			name:     "Several candidates ask for a choice",
			text:     "makale görevini sil",
			tasks:    openTasks,
			wantType: intent.ActionChoose,
			wantKind: intent.KindDelete,
			wantLen:  2,
		},
		{
			name:     "No candidate reports no match",
			text:     "yüzme dersini sil",
			tasks:    openTasks,
			wantType: intent.ActionNoMatch,
			wantKind: intent.KindDelete,
		},
		{
			name:     "Complete keyword routes with done kind",
			text:     "danışman toplantısını tamamladım",
			tasks:    openTasks,
			wantType: intent.ActionConfirm,
			wantKind: intent.KindComplete,
			wantID:   1,
		},
		{
			name:     "No open tasks reports no match",
			text:     "danışman toplantısını sil",
			tasks:    nil,
			wantType: intent.ActionNoMatch,
			wantKind: intent.KindDelete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newTestEngine(t, newMemoryPending())
			action := engine.Handle(context.Background(), msg(tt.text), tt.tasks)
			if action.Type != tt.wantType {
				t.Fatalf("action type = %v, want %v", action.Type, tt.wantType)
			}
			if action.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", action.Kind, tt.wantKind)
			}
			if tt.wantID != 0 && action.TaskID != tt.wantID {
				t.Errorf("task id = %d, want %d", action.TaskID, tt.wantID)
			}
			if tt.wantLen != 0 && len(action.Candidates) != tt.wantLen {
				t.Errorf("candidates = %d, want %d", len(action.Candidates), tt.wantLen)
			}
		})
	}
}

func TestHandlePlain(t *testing.T) {
	engine := newTestEngine(t, newMemoryPending())

	action := engine.Handle(context.Background(), msg("merhaba nasılsın"), nil)
	if action.Type != intent.ActionNone {
		t.Fatalf("action type = %v, want ActionNone", action.Type)
	}
}
