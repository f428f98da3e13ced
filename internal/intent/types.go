package intent

import (
	"context"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

// Category is the lexical class of an inbound message.
type Category int

const (
	CategoryPlain Category = iota
	CategorySummary
	CategoryDelete
	CategoryComplete
	CategoryTaskLike
)

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case CategorySummary:
		return "summary"
	case CategoryDelete:
		return "delete"
	case CategoryComplete:
		return "complete"
	case CategoryTaskLike:
		return "task_like"
	default:
		return "plain"
	}
}

// ActionType is the kind of decision the engine produced for one message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionCreateTask
	ActionAskForDate
	ActionShowSummary
	ActionConfirm
	ActionChoose
	ActionNoMatch
)

// ActionKind distinguishes delete from complete in Confirm/Choose actions.
type ActionKind string

const (
	KindDelete   ActionKind = "delete"
	KindComplete ActionKind = "done"
)

// Action is the engine's single decision for one inbound message.
// Exactly one Action is produced for every input; there is no error path.
type Action struct {
	Type       ActionType
	Title      string       // set for ActionCreateTask
	DueAt      time.Time    // set for ActionCreateTask
	Kind       ActionKind   // set for ActionConfirm / ActionChoose
	TaskID     int64        // set for ActionConfirm
	Candidates []model.Task // set for ActionChoose
}

// Message is one inbound chat message. Never mutated.
type Message struct {
	ChatID string
	Text   string
	Now    time.Time // message arrival time, timezone-aware
}

// PendingStore is the externally-owned single-slot pending-task store,
// keyed by chat id. The engine reads it once at entry and writes at most
// once per call. Callers must serialize calls per chat id.
type PendingStore interface {
	Get(ctx context.Context, chatID string) (model.PendingTask, bool, error)
	// Arm stores a new pending draft, replacing any existing one (last writer wins).
	Arm(ctx context.Context, chatID, title string, now time.Time) error
	Clear(ctx context.Context, chatID string) error
}

// Keywords holds the fixed word lists the classifier and query extraction
// match against. Constructed once; immutable for the engine's lifetime.
type Keywords struct {
	Summary  []string
	Delete   []string
	Complete []string
	Task     []string
}

// DefaultKeywords returns the built-in Turkish keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Summary:  []string{"özet", "ozet", "summary", "rapor", "durum"},
		Delete:   []string{"sil", "kaldır", "iptal et", "silmek"},
		Complete: []string{"tamamlandı", "tamamladım", "tamamla", "bitirdim", "bitti"},
		Task: []string{
			"hatırlat", "hatirlat", "toplantı", "toplanti", "deadline",
			"bitir", "yap", "görev", "gorev", "ödev", "odev",
			"tez", "thesis", "proposal", "sunum", "makale", "okuma", "okumak",
		},
	}
}
