package telegram

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/model"
	"github.com/blc10/research-assistant/internal/task"
	pkgResponse "github.com/blc10/research-assistant/pkg/response"
	pkgTelegram "github.com/blc10/research-assistant/pkg/telegram"
)

const settingChatID = "telegram_chat_id"

var goalYearRe = regexp.MustCompile(`(20\d{2})`)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the update in a
// background goroutine; Telegram expects an answer within a few seconds
// and a scan or LLM round trip can take longer.
func (h *HandlerImpl) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		cb := update.CallbackQuery
		go h.withChatLock(chatOf(cb.Message), func(bg context.Context, chatID int64) {
			h.processCallback(bg, chatID, cb)
		})
	case update.Message != nil && update.Message.Chat != nil:
		msg := update.Message
		if err := h.limiter.Allow(msg.Chat.ID); err != nil {
			h.l.Warnf(ctx, "telegram handler: %v", err)
			break
		}
		go h.withChatLock(msg.Chat.ID, func(bg context.Context, chatID int64) {
			h.processMessage(bg, chatID, msg)
		})
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func chatOf(msg *pkgTelegram.Message) int64 {
	if msg == nil || msg.Chat == nil {
		return 0
	}
	return msg.Chat.ID
}

// withChatLock serializes processing per chat, detached from the request
// context which is cancelled as soon as the webhook is acknowledged.
func (h *HandlerImpl) withChatLock(chatID int64, fn func(ctx context.Context, chatID int64)) {
	if chatID == 0 {
		return
	}
	lock := h.chats.get(chatID)
	lock.Lock()
	defer lock.Unlock()
	fn(context.Background(), chatID)
}

// processMessage handles a single Telegram message.
func (h *HandlerImpl) processMessage(ctx context.Context, chatID int64, msg *pkgTelegram.Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	h.rememberChat(ctx, chatID)

	if strings.HasPrefix(text, "/") {
		h.processCommand(ctx, chatID, text)
		return
	}
	h.processText(ctx, chatID, text)
}

// rememberChat records the first seen chat id, the target for reminders
// and digests.
func (h *HandlerImpl) rememberChat(ctx context.Context, chatID int64) {
	stored, err := h.settings.Get(ctx, settingChatID)
	if err != nil || stored != "" {
		return
	}
	if err := h.settings.Set(ctx, settingChatID, strconv.FormatInt(chatID, 10)); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to store chat id: %v", err)
	}
}

// processText routes a free-text message through the intent engine.
func (h *HandlerImpl) processText(ctx context.Context, chatID int64, text string) {
	lowered := strings.ToLower(text)
	if strings.Contains(lowered, "şablon") || strings.Contains(lowered, "template") || strings.Contains(lowered, "örnek") {
		h.sendTemplates(ctx, chatID)
		return
	}

	now := time.Now().In(h.dates.Location())

	openTasks, err := h.taskUC.Open(ctx)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to load open tasks: %v", err)
	}

	action := h.engine.Handle(ctx, intent.Message{
		ChatID: strconv.FormatInt(chatID, 10),
		Text:   text,
		Now:    now,
	}, openTasks)

	switch action.Type {
	case intent.ActionCreateTask:
		h.createTask(ctx, chatID, action.Title, action.DueAt)

	case intent.ActionAskForDate:
		h.send(ctx, chatID, "Ne zaman hatırlatayım? Örnek: yarın 15:00")

	case intent.ActionShowSummary:
		h.send(ctx, chatID, h.buildSummary(ctx))

	case intent.ActionConfirm:
		h.sendConfirmation(ctx, chatID, action.Kind, action.TaskID)

	case intent.ActionChoose:
		h.sendTaskSelection(ctx, chatID, action.Kind, action.Candidates)

	case intent.ActionNoMatch:
		h.send(ctx, chatID, "Eşleşen görev bulunamadı. /tasks ile listeden bakabilirsin.")

	default:
		h.processPlain(ctx, chatID, lowered, text)
	}
}

func (h *HandlerImpl) createTask(ctx context.Context, chatID int64, title string, dueAt time.Time) {
	sc := model.Scope{ChatID: strconv.FormatInt(chatID, 10), Source: "telegram"}
	created, err := h.taskUC.Create(ctx, sc, task.CreateInput{Title: title, DueAt: &dueAt})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to create task: %v", err)
		h.send(ctx, chatID, "Görevi kaydedemedim, tekrar dener misin?")
		return
	}
	h.send(ctx, chatID, fmt.Sprintf("Kaydettim.\nGörev: %s\nZaman: %s", created.Title, h.formatLocal(created.DueAt)))
}

// processPlain answers messages the engine produced no action for:
// list requests, inline goal creation, small talk, and the generic hint.
func (h *HandlerImpl) processPlain(ctx context.Context, chatID int64, lowered, text string) {
	if strings.Contains(lowered, "listele") || strings.Contains(lowered, "liste") {
		tasks, err := h.taskUC.Open(ctx)
		if err != nil {
			h.l.Errorf(ctx, "telegram handler: failed to list tasks: %v", err)
			return
		}
		h.send(ctx, chatID, h.formatTasks(tasks))
		return
	}

	if strings.Contains(lowered, "hedef") {
		if m := goalYearRe.FindStringSubmatch(text); m != nil {
			year, _ := strconv.Atoi(m[1])
			title := strings.TrimSpace(strings.Replace(text, m[1], "", 1))
			if title != "" {
				if _, err := h.goalUC.Create(ctx, title, year); err == nil {
					h.send(ctx, chatID, "Hedef eklendi ✅")
					return
				}
			}
		}
	}

	switch {
	case containsAnyOf(lowered, "merhaba", "selam", "naber", "nasılsın", "nasilsin"):
		h.send(ctx, chatID, fmt.Sprintf("Merhaba! Ben %s. Sana nasıl yardımcı olabilirim?", botName))
	case containsAnyOf(lowered, "teşekkür", "tesekkur", "sağ ol", "sag ol"):
		h.send(ctx, chatID, "Rica ederim. Başka bir şey var mı?")
	case containsAnyOf(lowered, "kimsin", "nesin", "ne yaparsın"):
		h.send(ctx, chatID, fmt.Sprintf("Ben %s. Görevlerini ve araştırma özetlerini yönetiyorum.", botName))
	default:
		h.send(ctx, chatID, fmt.Sprintf(
			"%s burada. Görev eklemek için örnek: 'yarın 10:00 toplantı var hatırlat'. "+
				"İstersen 'özet' yaz, durumunu toparlayayım.", botName))
	}
}

func containsAnyOf(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// sendConfirmation asks for a yes/cancel on one task before a destructive
// or completing action.
func (h *HandlerImpl) sendConfirmation(ctx context.Context, chatID int64, kind intent.ActionKind, taskID int64) {
	t, err := h.taskUC.Detail(ctx, taskID)
	if err != nil {
		h.send(ctx, chatID, "Görev bulunamadı.")
		return
	}

	var (
		question string
		button   string
	)
	if kind == intent.KindDelete {
		question = fmt.Sprintf("#%d silinsin mi?\n%s", taskID, t.Title)
		button = "Sil"
	} else {
		question = fmt.Sprintf("#%d tamamlandı olarak işaretlensin mi?\n%s", taskID, t.Title)
		button = "Tamamlandı"
	}

	keyboard := &pkgTelegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]pkgTelegram.InlineKeyboardButton{
			{
				{Text: button, CallbackData: fmt.Sprintf("%s:%d", kind, taskID)},
				{Text: "Vazgeç", CallbackData: fmt.Sprintf("%s:cancel", kind)},
			},
		},
	}
	if err := h.bot.SendMessageWithKeyboard(chatID, question, keyboard); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to send confirmation: %v", err)
	}
}

// sendTaskSelection offers a picker over candidate tasks.
func (h *HandlerImpl) sendTaskSelection(ctx context.Context, chatID int64, kind intent.ActionKind, tasks []model.Task) {
	if len(tasks) == 0 {
		h.send(ctx, chatID, "Eşleşen görev bulunamadı. /tasks ile listeden bakabilirsin.")
		return
	}

	var rows [][]pkgTelegram.InlineKeyboardButton
	for _, t := range tasks {
		label := fmt.Sprintf("#%d %s", t.ID, truncate(t.Title, 36))
		rows = append(rows, []pkgTelegram.InlineKeyboardButton{
			{Text: label, CallbackData: fmt.Sprintf("%s_pick:%d", kind, t.ID)},
		})
	}
	rows = append(rows, []pkgTelegram.InlineKeyboardButton{
		{Text: "Vazgeç", CallbackData: fmt.Sprintf("%s:cancel", kind)},
	})

	keyboard := &pkgTelegram.InlineKeyboardMarkup{InlineKeyboard: rows}
	if err := h.bot.SendMessageWithKeyboard(chatID, "Hangisini seçeyim?", keyboard); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to send selection: %v", err)
	}
}

func (h *HandlerImpl) sendTemplates(ctx context.Context, chatID int64) {
	lines := []string{"Örnek kalıplar:"}
	for _, example := range templateExamples {
		lines = append(lines, "• "+example)
	}
	h.send(ctx, chatID, strings.Join(lines, "\n"))
}
