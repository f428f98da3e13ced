package telegram

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/goal"
	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/internal/storage"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/pkg/datemath"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
	pkgTelegram "github.com/blc10/research-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	taskUC task.UseCase,
	paperUC paper.UseCase,
	goalUC goal.UseCase,
	engine *intent.Engine,
	bot *pkgTelegram.Bot,
	settings *storage.Settings,
	dates *datemath.Parser,
	rateLimitPerMin int,
) *HandlerImpl {
	return &HandlerImpl{
		l:        l,
		taskUC:   taskUC,
		paperUC:  paperUC,
		goalUC:   goalUC,
		engine:   engine,
		bot:      bot,
		settings: settings,
		dates:    dates,
		limiter:  newRateLimiter(rateLimitPerMin),
		chats:    &chatLocks{locks: make(map[int64]*sync.Mutex)},
	}
}

// HandlerImpl processes Telegram updates and scheduled jobs.
type HandlerImpl struct {
	l        pkgLog.Logger
	taskUC   task.UseCase
	paperUC  paper.UseCase
	goalUC   goal.UseCase
	engine   *intent.Engine
	bot      *pkgTelegram.Bot
	settings *storage.Settings
	dates    *datemath.Parser
	limiter  *rateLimiter
	chats    *chatLocks
}

// chatLocks serializes processing per chat: the intent engine's pending
// slot protocol assumes one message at a time per chat id.
type chatLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func (c *chatLocks) get(chatID int64) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[chatID] = l
	}
	return l
}
