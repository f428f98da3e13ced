package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pkgTelegram "github.com/blc10/research-assistant/pkg/telegram"
)

// Reminders sends one reminder per due task and marks it reminded. Runs on
// the scheduler tick; safe to call repeatedly since each task is reminded
// at most once until it is snoozed.
func (h *HandlerImpl) Reminders(ctx context.Context) {
	chatID, ok := h.targetChat(ctx)
	if !ok {
		return
	}

	now := time.Now().In(h.dates.Location())
	due, err := h.taskUC.DueReminders(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram jobs: failed to load due reminders: %v", err)
		return
	}

	for _, t := range due {
		text := fmt.Sprintf("⏰ Hatırlatma\nGörev: %s\nZaman: %s", t.Title, h.formatLocal(t.DueAt))
		keyboard := &pkgTelegram.InlineKeyboardMarkup{
			InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{
				{
					{Text: "Tamamlandı", CallbackData: fmt.Sprintf("done:%d", t.ID)},
					{Text: "1 saat ertele", CallbackData: fmt.Sprintf("snooze:%d:60", t.ID)},
				},
			},
		}
		if err := h.bot.SendMessageWithKeyboard(chatID, text, keyboard); err != nil {
			h.l.Errorf(ctx, "telegram jobs: failed to send reminder for task %d: %v", t.ID, err)
			continue
		}
		if err := h.taskUC.MarkReminded(ctx, t.ID, now); err != nil {
			h.l.Errorf(ctx, "telegram jobs: failed to mark task %d reminded: %v", t.ID, err)
		}
	}
}

// RunScan runs the daily paper scan.
func (h *HandlerImpl) RunScan(ctx context.Context) {
	out, err := h.paperUC.Scan(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram jobs: scheduled scan failed: %v", err)
		return
	}
	h.l.Infof(ctx, "telegram jobs: scheduled scan %s done, fetched=%d new=%d analyzed=%d",
		out.RunID, out.Fetched, out.NewPapers, out.Analyzed)
}

// Digest sends the daily paper digest to the stored chat. Skipped when the
// last day brought no papers.
func (h *HandlerImpl) Digest(ctx context.Context) {
	chatID, ok := h.targetChat(ctx)
	if !ok {
		return
	}

	now := time.Now().In(h.dates.Location())
	digest, err := h.paperUC.Digest(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram jobs: failed to build digest: %v", err)
		return
	}
	if len(digest.Papers) == 0 {
		h.l.Infof(ctx, "telegram jobs: no papers in the last day, skipping digest")
		return
	}

	lines := []string{fmt.Sprintf("📚 Günlük Makale Özeti (%d yeni)", len(digest.Papers))}
	for _, p := range digest.Papers {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("#%d • %s", p.ID, p.Title))
		lines = append(lines, fmt.Sprintf("İlgi: %s", formatScore(p.Relevance)))
		if p.Summary != "" {
			lines = append(lines, p.Summary)
		}
		if p.URL != "" {
			lines = append(lines, p.URL)
		}
	}
	lines = append(lines, "", "Okuduğunu /read <id> ile işaretleyebilirsin.")
	if digest.ReadStreak > 0 {
		lines = append(lines, fmt.Sprintf("🔥 Okuma serisi: %d gün", digest.ReadStreak))
	}
	h.sendLong(ctx, chatID, lines)
}

// targetChat resolves the stored Telegram chat id for outbound jobs.
func (h *HandlerImpl) targetChat(ctx context.Context) (int64, bool) {
	stored, err := h.settings.Get(ctx, settingChatID)
	if err != nil {
		h.l.Errorf(ctx, "telegram jobs: failed to read chat id: %v", err)
		return 0, false
	}
	if stored == "" {
		return 0, false
	}
	chatID, err := strconv.ParseInt(stored, 10, 64)
	if err != nil {
		h.l.Errorf(ctx, "telegram jobs: stored chat id %q is not numeric", stored)
		return 0, false
	}
	return chatID, true
}
