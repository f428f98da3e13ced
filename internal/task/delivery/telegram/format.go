package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blc10/research-assistant/internal/model"
)

const (
	botName = "Research Assistant"
	botRole = "Kişisel araştırma asistanın."

	summaryTaskLimit  = 6
	summaryPaperLimit = 6

	// Telegram message length limit safety margin.
	maxMessageLen = 3800
)

var templateExamples = []string{
	"Bana yarın 15:00 danışman toplantısını hatırlat",
	"Bu hafta tez önerisini bitirmeyi hatırlat",
	"Bugün 18:00 markete gitmemi hatırlat",
	"Şu hatırlatmayı sil: danışman toplantısı",
	"Özet",
}

func (h *HandlerImpl) formatLocal(t *time.Time) string {
	if t == nil {
		return "(zaman belirtilmedi)"
	}
	return t.In(h.dates.Location()).Format("02 Jan 2006 15:04")
}

func (h *HandlerImpl) formatTaskLine(t model.Task) string {
	due := "(tarih yok)"
	if t.DueAt != nil {
		due = h.formatLocal(t.DueAt)
	}
	return fmt.Sprintf("#%d • %s — %s", t.ID, t.Title, due)
}

func (h *HandlerImpl) formatTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "Görev bulunamadı."
	}
	lines := []string{"Görevler:"}
	for _, t := range tasks {
		lines = append(lines, h.formatTaskLine(t))
	}
	return strings.Join(lines, "\n")
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit-1]), " ") + "…"
}

func formatScore(relevance *float64) string {
	if relevance == nil {
		return "skor yok"
	}
	return fmt.Sprintf("%.0f/100", *relevance)
}

// buildSummary assembles the status report: task counts, today's or
// upcoming tasks, and the last day's papers.
func (h *HandlerImpl) buildSummary(ctx context.Context) string {
	now := time.Now().In(h.dates.Location())

	lines := []string{fmt.Sprintf("📊 %s Özeti", botName)}

	summary, err := h.taskUC.Summary(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to build task summary: %v", err)
		return "Özet hazırlanamadı, birazdan tekrar dener misin?"
	}
	lines = append(lines, fmt.Sprintf("Açık görev: %d | Tamamlanan: %d", summary.PendingCount, summary.DoneCount))

	switch {
	case len(summary.DueToday) > 0:
		lines = append(lines, "Bugün:")
		for _, t := range limitTasks(summary.DueToday, summaryTaskLimit) {
			lines = append(lines, "• "+h.formatTaskLine(t))
		}
	default:
		upcoming, err := h.taskUC.List(ctx, model.TaskStatusPending, summaryTaskLimit)
		if err == nil && len(upcoming) > 0 {
			lines = append(lines, "Yaklaşan görevler:")
			for _, t := range upcoming {
				lines = append(lines, "• "+h.formatTaskLine(t))
			}
		} else {
			lines = append(lines, "Görev görünmüyor.")
		}
	}

	digest, err := h.paperUC.Digest(ctx, now)
	if err == nil && len(digest.Papers) > 0 {
		lines = append(lines, "Son makaleler:")
		for _, p := range limitPapers(digest.Papers, summaryPaperLimit) {
			lines = append(lines, fmt.Sprintf("• %s (%s)", p.Title, formatScore(p.Relevance)))
		}
	} else {
		lines = append(lines, "Son 24 saatte makale yok.")
	}

	if total, err := h.paperUC.Count(ctx, nil); err == nil {
		lines = append(lines, fmt.Sprintf("Toplam makale: %d", total))
	}

	return strings.Join(lines, "\n")
}

func limitTasks(tasks []model.Task, limit int) []model.Task {
	if len(tasks) > limit {
		return tasks[:limit]
	}
	return tasks
}

func limitPapers(papers []model.Paper, limit int) []model.Paper {
	if len(papers) > limit {
		return papers[:limit]
	}
	return papers
}

// sendLong splits a message that would exceed Telegram's length limit.
func (h *HandlerImpl) sendLong(ctx context.Context, chatID int64, lines []string) {
	message := strings.Join(lines, "\n")
	if len(message) <= maxMessageLen {
		h.send(ctx, chatID, message)
		return
	}
	half := len(lines) / 2
	for _, part := range []string{strings.Join(lines[:half], "\n"), strings.Join(lines[half:], "\n")} {
		if strings.TrimSpace(part) != "" {
			h.send(ctx, chatID, part)
		}
	}
}

func (h *HandlerImpl) send(ctx context.Context, chatID int64, text string) {
	if err := h.bot.SendMessage(chatID, text); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to send message to chat %d: %v", chatID, err)
	}
}
