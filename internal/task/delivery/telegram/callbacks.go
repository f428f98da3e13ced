package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/task"
	pkgTelegram "github.com/blc10/research-assistant/pkg/telegram"
)

// processCallback handles an inline keyboard button press. The data format
// is "<op>:<id>", "<op>:cancel", "<op>_pick:<id>" or "snooze:<id>:<minutes>".
func (h *HandlerImpl) processCallback(ctx context.Context, chatID int64, cb *pkgTelegram.CallbackQuery) {
	if err := h.bot.AnswerCallbackQuery(cb.ID); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to answer callback: %v", err)
	}
	if chatID == 0 || cb.Message == nil {
		return
	}
	messageID := cb.Message.MessageID

	parts := strings.Split(cb.Data, ":")
	if len(parts) < 2 {
		return
	}
	op, arg := parts[0], parts[1]

	if arg == "cancel" {
		h.edit(ctx, chatID, messageID, "İşlem iptal edildi.")
		return
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return
	}

	switch op {
	case "delete":
		h.callbackDelete(ctx, chatID, messageID, id)
	case "done":
		h.callbackDone(ctx, chatID, messageID, id)
	case "delete_pick":
		h.edit(ctx, chatID, messageID, fmt.Sprintf("Seçildi: #%d", id))
		h.sendConfirmation(ctx, chatID, intent.KindDelete, id)
	case "done_pick":
		h.edit(ctx, chatID, messageID, fmt.Sprintf("Seçildi: #%d", id))
		h.sendConfirmation(ctx, chatID, intent.KindComplete, id)
	case "snooze":
		if len(parts) < 3 {
			return
		}
		h.callbackSnooze(ctx, chatID, messageID, id, parts[2])
	}
}

func (h *HandlerImpl) callbackDelete(ctx context.Context, chatID, messageID, id int64) {
	if err := h.taskUC.Delete(ctx, id); err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			h.edit(ctx, chatID, messageID, "Görev bulunamadı.")
			return
		}
		h.l.Errorf(ctx, "telegram handler: failed to delete task: %v", err)
		h.edit(ctx, chatID, messageID, "Görevi silemedim.")
		return
	}
	h.edit(ctx, chatID, messageID, fmt.Sprintf("#%d silindi 🗑️", id))
}

func (h *HandlerImpl) callbackDone(ctx context.Context, chatID, messageID, id int64) {
	done, err := h.taskUC.Done(ctx, id)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			h.edit(ctx, chatID, messageID, "Görev bulunamadı.")
			return
		}
		h.l.Errorf(ctx, "telegram handler: failed to complete task: %v", err)
		h.edit(ctx, chatID, messageID, "Görevi tamamlayamadım.")
		return
	}
	h.edit(ctx, chatID, messageID, fmt.Sprintf("#%d tamamlandı ✅\n%s", done.ID, done.Title))
}

func (h *HandlerImpl) callbackSnooze(ctx context.Context, chatID, messageID, id int64, rawMinutes string) {
	minutes, err := strconv.Atoi(rawMinutes)
	if err != nil || minutes <= 0 {
		return
	}

	now := time.Now().In(h.dates.Location())
	snoozed, err := h.taskUC.Snooze(ctx, task.SnoozeInput{
		TaskID:  id,
		RawText: fmt.Sprintf("%d dakika", minutes),
	}, now)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			h.edit(ctx, chatID, messageID, "Görev bulunamadı.")
			return
		}
		h.l.Errorf(ctx, "telegram handler: failed to snooze task: %v", err)
		h.edit(ctx, chatID, messageID, "Görevi erteleyemedim.")
		return
	}
	h.edit(ctx, chatID, messageID, fmt.Sprintf("#%d ertelendi ⏰\nYeni zaman: %s", snoozed.ID, h.formatLocal(snoozed.DueAt)))
}

func (h *HandlerImpl) edit(ctx context.Context, chatID, messageID int64, text string) {
	if err := h.bot.EditMessageText(chatID, messageID, text); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to edit message: %v", err)
	}
}
