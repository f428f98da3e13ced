package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
)

// processCommand dispatches a slash command.
func (h *HandlerImpl) processCommand(ctx context.Context, chatID int64, text string) {
	fields := strings.Fields(text)
	command := strings.ToLower(fields[0])
	// strip the @botname suffix from group-style commands
	if at := strings.Index(command, "@"); at > 0 {
		command = command[:at]
	}
	args := fields[1:]

	switch command {
	case "/start":
		h.commandStart(ctx, chatID)
	case "/help":
		h.commandHelp(ctx, chatID)
	case "/tasks":
		h.commandTasks(ctx, chatID)
	case "/today":
		h.commandToday(ctx, chatID)
	case "/week":
		h.commandWeek(ctx, chatID)
	case "/done":
		h.commandDone(ctx, chatID, args)
	case "/delete":
		h.commandDelete(ctx, chatID, args)
	case "/snooze":
		h.commandSnooze(ctx, chatID, args)
	case "/summary", "/ozet":
		h.send(ctx, chatID, h.buildSummary(ctx))
	case "/templates":
		h.sendTemplates(ctx, chatID)
	case "/papers":
		h.commandPapers(ctx, chatID)
	case "/read":
		h.commandRead(ctx, chatID, args)
	case "/scan":
		h.commandScan(ctx, chatID)
	case "/goals":
		h.commandGoals(ctx, chatID)
	case "/goal":
		h.commandGoal(ctx, chatID, args)
	default:
		h.send(ctx, chatID, "Bu komutu bilmiyorum. /help ile komutlara bakabilirsin.")
	}
}

func (h *HandlerImpl) commandStart(ctx context.Context, chatID int64) {
	if err := h.settings.Set(ctx, settingChatID, strconv.FormatInt(chatID, 10)); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to store chat id: %v", err)
	}
	h.send(ctx, chatID, fmt.Sprintf(
		"Merhaba! Ben %s, %s.\n\n"+
			"Bana doğal dilde yazabilirsin:\n"+
			"• 'yarın 15:00 danışman toplantısı hatırlat'\n"+
			"• 'özet' dersen durumunu toparlarım\n\n"+
			"Komutlar için /help yazabilirsin.", botName, botRole))
}

func (h *HandlerImpl) commandHelp(ctx context.Context, chatID int64) {
	h.send(ctx, chatID, strings.Join([]string{
		"Komutlar:",
		"/tasks — açık görevler",
		"/today — bugün bitecekler",
		"/week — bu hafta bitecekler",
		"/done <id> — görevi tamamla",
		"/delete <id> — görevi sil",
		"/snooze <id> <süre> — görevi ertele (örn. /snooze 3 30 dakika)",
		"/summary — genel özet",
		"/papers — son 24 saatin makaleleri",
		"/read <id> — makaleyi okundu işaretle",
		"/scan — makale taramasını hemen çalıştır",
		"/goals — yıllık hedefler",
		"/goal <yıl> <başlık> — hedef ekle",
		"/templates — örnek kalıplar",
		"",
		"Doğal dil de çalışır: 'cuma 14:00 sunum hazırla hatırlat'.",
	}, "\n"))
}

func (h *HandlerImpl) commandTasks(ctx context.Context, chatID int64) {
	tasks, err := h.taskUC.Open(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to list tasks: %v", err)
		h.send(ctx, chatID, "Görevleri getiremedim.")
		return
	}
	h.send(ctx, chatID, h.formatTasks(tasks))
}

func (h *HandlerImpl) commandToday(ctx context.Context, chatID int64) {
	now := time.Now().In(h.dates.Location())
	tasks, err := h.taskUC.DueToday(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to list today's tasks: %v", err)
		h.send(ctx, chatID, "Görevleri getiremedim.")
		return
	}
	if len(tasks) == 0 {
		h.send(ctx, chatID, "Bugün için planlı görev yok. 🎉")
		return
	}
	lines := []string{"Bugün bitecekler:"}
	for _, t := range tasks {
		lines = append(lines, h.formatTaskLine(t))
	}
	h.send(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *HandlerImpl) commandWeek(ctx context.Context, chatID int64) {
	now := time.Now().In(h.dates.Location())
	tasks, err := h.taskUC.DueThisWeek(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to list week's tasks: %v", err)
		h.send(ctx, chatID, "Görevleri getiremedim.")
		return
	}
	if len(tasks) == 0 {
		h.send(ctx, chatID, "Bu hafta için planlı görev yok.")
		return
	}
	lines := []string{"Bu hafta bitecekler:"}
	for _, t := range tasks {
		lines = append(lines, h.formatTaskLine(t))
	}
	h.send(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *HandlerImpl) commandDone(ctx context.Context, chatID int64, args []string) {
	id, ok := parseID(args)
	if !ok {
		h.send(ctx, chatID, "Kullanım: /done <id>")
		return
	}
	done, err := h.taskUC.Done(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			h.send(ctx, chatID, "Görev bulunamadı.")
			return
		}
		h.l.Errorf(ctx, "telegram handler: failed to complete task: %v", err)
		h.send(ctx, chatID, "Görevi tamamlayamadım.")
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("#%d tamamlandı ✅\n%s", done.ID, done.Title))
}

func (h *HandlerImpl) commandDelete(ctx context.Context, chatID int64, args []string) {
	id, ok := parseID(args)
	if !ok {
		h.send(ctx, chatID, "Kullanım: /delete <id>")
		return
	}
	// a command still goes through confirmation, deletion is irreversible
	h.sendConfirmation(ctx, chatID, "delete", id)
}

func (h *HandlerImpl) commandSnooze(ctx context.Context, chatID int64, args []string) {
	if len(args) < 2 {
		h.send(ctx, chatID, "Kullanım: /snooze <id> <süre>, örnek: /snooze 3 30 dakika")
		return
	}
	id, ok := parseID(args[:1])
	if !ok {
		h.send(ctx, chatID, "Kullanım: /snooze <id> <süre>, örnek: /snooze 3 30 dakika")
		return
	}

	now := time.Now().In(h.dates.Location())
	snoozed, err := h.taskUC.Snooze(ctx, task.SnoozeInput{
		TaskID:  id,
		RawText: strings.Join(args[1:], " "),
	}, now)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskNotFound):
			h.send(ctx, chatID, "Görev bulunamadı.")
		case errors.Is(err, task.ErrBadDuration):
			h.send(ctx, chatID, "Süreyi anlayamadım. Örnek: 30 dakika, 2 saat, 1 gün.")
		default:
			h.l.Errorf(ctx, "telegram handler: failed to snooze task: %v", err)
			h.send(ctx, chatID, "Görevi erteleyemedim.")
		}
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("#%d ertelendi ⏰\nYeni zaman: %s", snoozed.ID, h.formatLocal(snoozed.DueAt)))
}

func (h *HandlerImpl) commandPapers(ctx context.Context, chatID int64) {
	now := time.Now().In(h.dates.Location())
	digest, err := h.paperUC.Digest(ctx, now)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to build digest: %v", err)
		h.send(ctx, chatID, "Makaleleri getiremedim.")
		return
	}
	if len(digest.Papers) == 0 {
		h.send(ctx, chatID, "Son 24 saatte yeni makale yok. /scan ile tarama başlatabilirsin.")
		return
	}

	lines := []string{fmt.Sprintf("Son 24 saatin makaleleri (%d):", len(digest.Papers))}
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
	if digest.ReadStreak > 0 {
		lines = append(lines, "", fmt.Sprintf("🔥 Okuma serisi: %d gün", digest.ReadStreak))
	}
	h.sendLong(ctx, chatID, lines)
}

func (h *HandlerImpl) commandRead(ctx context.Context, chatID int64, args []string) {
	id, ok := parseID(args)
	if !ok {
		h.send(ctx, chatID, "Kullanım: /read <id>")
		return
	}
	now := time.Now().In(h.dates.Location())
	if err := h.paperUC.MarkRead(ctx, id, now); err != nil {
		h.send(ctx, chatID, "Makale bulunamadı.")
		return
	}
	streak, err := h.paperUC.ReadStreak(ctx, now)
	if err != nil || streak == 0 {
		h.send(ctx, chatID, fmt.Sprintf("#%d okundu işaretlendi 📖", id))
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("#%d okundu işaretlendi 📖\n🔥 Okuma serisi: %d gün", id, streak))
}

func (h *HandlerImpl) commandScan(ctx context.Context, chatID int64) {
	h.send(ctx, chatID, "Tarama başlıyor, bu birkaç dakika sürebilir...")
	out, err := h.paperUC.Scan(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: scan failed: %v", err)
		h.send(ctx, chatID, "Tarama başarısız oldu. Anahtar kelimeler tanımlı mı?")
		return
	}
	h.send(ctx, chatID, fmt.Sprintf(
		"Tarama bitti.\nBulunan: %d\nYeni: %d\nAnaliz edilen: %d", out.Fetched, out.NewPapers, out.Analyzed))
}

func (h *HandlerImpl) commandGoals(ctx context.Context, chatID int64) {
	goals, err := h.goalUC.List(ctx, model.GoalStatusActive)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to list goals: %v", err)
		h.send(ctx, chatID, "Hedefleri getiremedim.")
		return
	}
	if len(goals) == 0 {
		h.send(ctx, chatID, "Aktif hedef yok. /goal <yıl> <başlık> ile ekleyebilirsin.")
		return
	}
	lines := []string{"Aktif hedefler:"}
	for _, g := range goals {
		lines = append(lines, fmt.Sprintf("#%d • %d — %s (%%%d)", g.ID, g.Year, g.Title, g.Progress))
	}
	h.send(ctx, chatID, strings.Join(lines, "\n"))
}

func (h *HandlerImpl) commandGoal(ctx context.Context, chatID int64, args []string) {
	if len(args) < 2 {
		h.send(ctx, chatID, "Kullanım: /goal <yıl> <başlık>, örnek: /goal 2026 Tez önerisini bitir")
		return
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		h.send(ctx, chatID, "Yılı anlayamadım. Örnek: /goal 2026 Tez önerisini bitir")
		return
	}
	title := strings.Join(args[1:], " ")
	created, err := h.goalUC.Create(ctx, title, year)
	if err != nil {
		h.send(ctx, chatID, "Hedefi ekleyemedim. Yıl 2000-2100 aralığında olmalı.")
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("Hedef eklendi ✅\n#%d • %d — %s", created.ID, created.Year, created.Title))
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		return 0, false
	}
	raw := strings.TrimPrefix(args[0], "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
