package intent

import (
	"context"
	"regexp"
	"strconv"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/pkg/datemath"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

// How many candidate tasks a delete/complete picker offers at most.
const candidateLimit = 5

var explicitIDRe = regexp.MustCompile(`#?(\d+)`)

// Engine turns one inbound message into exactly one Action. It never fails:
// extraction and parsing absence are normal representable outcomes, and
// malformed input degrades to a clarifying question or ActionNone.
//
// The engine is pure computation except for the externally-owned pending
// store, which it reads once at entry and writes at most once per call.
// Callers must serialize calls per chat id.
type Engine struct {
	l          pkgLog.Logger
	classifier *Classifier
	extractor  *Extractor
	normalizer *Normalizer
	resolver   *Resolver
	pending    PendingStore
	kw         Keywords
}

// NewEngine creates the task intent engine. The keyword lists are captured
// once and treated as immutable for the engine's lifetime.
func NewEngine(l pkgLog.Logger, dates *datemath.Parser, kw Keywords, pending PendingStore) *Engine {
	return &Engine{
		l:          l,
		classifier: NewClassifier(kw),
		extractor:  NewExtractor(dates),
		normalizer: NewNormalizer(DefaultFillers()),
		resolver:   NewResolver(),
		pending:    pending,
		kw:         kw,
	}
}

// Handle decides the action for one inbound message.
func (e *Engine) Handle(ctx context.Context, msg Message, openTasks []model.Task) Action {
	// 1. An armed pending slot overrides everything: the whole message is
	// read as the answer to "when?".
	pending, ok, err := e.pending.Get(ctx, msg.ChatID)
	if err != nil {
		e.l.Errorf(ctx, "intent.Engine: pending lookup failed for chat %s: %v", msg.ChatID, err)
	}
	if ok {
		return e.handleDateAnswer(ctx, msg, pending)
	}

	category := e.classifier.Classify(msg.Text)
	e.l.Debugf(ctx, "intent.Engine: chat=%s category=%s", msg.ChatID, category)

	switch category {
	case CategorySummary:
		return Action{Type: ActionShowSummary}
	case CategoryDelete:
		return e.handleTaskReference(KindDelete, e.kw.Delete, msg, openTasks)
	case CategoryComplete:
		return e.handleTaskReference(KindComplete, e.kw.Complete, msg, openTasks)
	case CategoryTaskLike:
		return e.handleTaskLike(ctx, msg)
	}
	return Action{Type: ActionNone}
}

// handleDateAnswer finalizes a pending draft when the reply carries a
// date/time; otherwise the slot stays armed and the question is repeated.
func (e *Engine) handleDateAnswer(ctx context.Context, msg Message, pending model.PendingTask) Action {
	parsed, ok := e.extractor.Extract(msg.Text, msg.Now)
	if !ok {
		return Action{Type: ActionAskForDate}
	}

	if err := e.pending.Clear(ctx, msg.ChatID); err != nil {
		e.l.Errorf(ctx, "intent.Engine: failed to clear pending for chat %s: %v", msg.ChatID, err)
	}
	return Action{Type: ActionCreateTask, Title: pending.Title, DueAt: parsed.At}
}

// handleTaskReference resolves a delete/complete request to a task: an
// explicit id token wins, otherwise the residual query drives candidate
// matching.
func (e *Engine) handleTaskReference(kind ActionKind, actionWords []string, msg Message, openTasks []model.Task) Action {
	if m := explicitIDRe.FindStringSubmatch(msg.Text); m != nil {
		if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return Action{Type: ActionConfirm, Kind: kind, TaskID: id}
		}
	}

	query := ExtractActionQuery(msg.Text, actionWords)
	candidates := e.resolver.Resolve(query, openTasks, candidateLimit)

	switch len(candidates) {
	case 0:
		return Action{Type: ActionNoMatch, Kind: kind}
	case 1:
		return Action{Type: ActionConfirm, Kind: kind, TaskID: candidates[0].ID}
	default:
		return Action{Type: ActionChoose, Kind: kind, Candidates: candidates}
	}
}

// handleTaskLike extracts a due instant and normalizes the rest into a
// title; a missing instant arms the pending slot (replacing any earlier
// one) and asks for a time.
func (e *Engine) handleTaskLike(ctx context.Context, msg Message) Action {
	remaining := msg.Text
	parsed, found := e.extractor.Extract(msg.Text, msg.Now)
	if found {
		remaining = StripPhrase(msg.Text, parsed.Phrase)
	}

	title := e.normalizer.Normalize(remaining)

	if !found {
		if err := e.pending.Arm(ctx, msg.ChatID, title, msg.Now); err != nil {
			e.l.Errorf(ctx, "intent.Engine: failed to arm pending for chat %s: %v", msg.ChatID, err)
		}
		return Action{Type: ActionAskForDate}
	}
	return Action{Type: ActionCreateTask, Title: title, DueAt: parsed.At}
}
