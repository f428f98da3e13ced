package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/blc10/research-assistant/config"
	dashboardHTTP "github.com/blc10/research-assistant/internal/dashboard/delivery/http"
	goalSqlite "github.com/blc10/research-assistant/internal/goal/repository/sqlite"
	goalUsecase "github.com/blc10/research-assistant/internal/goal/usecase"
	"github.com/blc10/research-assistant/internal/httpserver"
	"github.com/blc10/research-assistant/internal/intent"
	paperSqlite "github.com/blc10/research-assistant/internal/paper/repository/sqlite"
	paperUsecase "github.com/blc10/research-assistant/internal/paper/usecase"
	"github.com/blc10/research-assistant/internal/scheduler"
	"github.com/blc10/research-assistant/internal/storage"
	tgDelivery "github.com/blc10/research-assistant/internal/task/delivery/telegram"
	taskSqlite "github.com/blc10/research-assistant/internal/task/repository/sqlite"
	taskUsecase "github.com/blc10/research-assistant/internal/task/usecase"
	"github.com/blc10/research-assistant/pkg/arxiv"
	"github.com/blc10/research-assistant/pkg/datemath"
	"github.com/blc10/research-assistant/pkg/gemini"
	"github.com/blc10/research-assistant/pkg/log"
	"github.com/blc10/research-assistant/pkg/semanticscholar"
	"github.com/blc10/research-assistant/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Research Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Timezone
	dates, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	db, err := storage.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database at %s: %v", cfg.SQLite.Path, err)
		return
	}
	defer db.Close()

	settings := storage.NewSettings(db)
	if err := settings.EnsureDefaults(ctx, map[string]string{
		"thesis_topic":   cfg.Assistant.ThesisTopic,
		"paper_keywords": strings.Join(cfg.Assistant.PaperKeywords, ","),
	}); err != nil {
		logger.Errorf(ctx, "Failed to seed settings: %v", err)
		return
	}
	if cfg.Telegram.ChatID != "" {
		if err := settings.EnsureDefaults(ctx, map[string]string{
			"telegram_chat_id": cfg.Telegram.ChatID,
		}); err != nil {
			logger.Warnf(ctx, "Failed to seed chat id: %v", err)
		}
	}

	// 5. Repositories
	taskRepo := taskSqlite.New(db, logger)
	pendingRepo := taskSqlite.NewPending(db, logger)
	paperRepo := paperSqlite.New(db, logger)
	goalRepo := goalSqlite.New(db, logger)

	// 6. External clients
	bot := telegram.NewBot(cfg.Telegram.BotToken)
	arxivClient := arxiv.NewClient()
	semanticClient := semanticscholar.NewClient(cfg.SemanticScholar.APIKey)

	llm, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 7. UseCases
	taskUC := taskUsecase.New(logger, taskRepo, dates)
	paperUC := paperUsecase.New(logger, paperRepo, settings, arxivClient, semanticClient, llm, dates, paperUsecase.Config{
		MaxPapersPerDay: cfg.Scanner.MaxPapersPerDay,
		ThesisTopic:     cfg.Assistant.ThesisTopic,
		PaperKeywords:   cfg.Assistant.PaperKeywords,
	})
	goalUC := goalUsecase.New(logger, goalRepo)

	// 8. Intent engine
	engine := intent.NewEngine(logger, dates, intent.DefaultKeywords(), pendingRepo)

	// 9. Delivery
	tgHandler := tgDelivery.New(logger, taskUC, paperUC, goalUC, engine, bot, settings, dates, cfg.Telegram.RateLimitPerMin)
	dashHandler := dashboardHTTP.New(logger, taskUC, paperUC, goalUC, settings, dates)

	registerBot(ctx, logger, bot, cfg.Telegram.WebhookURL)

	// 10. Scheduler
	sched, err := scheduler.New(logger, tgHandler, scheduler.Config{
		ScanAt:   cfg.Scanner.ScanTime,
		DigestAt: cfg.Scanner.DigestTime,
		Location: dates.Location(),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize scheduler: %v", err)
		return
	}
	go sched.Run(ctx)

	// 11. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TelegramHandler:  tgHandler,
		DashboardHandler: dashHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerBot points the Telegram webhook at this service and publishes
// the command menu. Failures are logged, not fatal: the bot can be wired
// later without restarting.
func registerBot(ctx context.Context, logger log.Logger, bot *telegram.Bot, webhookBase string) {
	if webhookBase != "" {
		webhookURL := strings.TrimRight(webhookBase, "/") + "/webhook/telegram"
		if err := bot.SetWebhook(webhookURL); err != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	commands := []telegram.BotCommand{
		{Command: "start", Description: "Botu başlat"},
		{Command: "help", Description: "Komut listesi"},
		{Command: "tasks", Description: "Açık görevler"},
		{Command: "today", Description: "Bugün bitecekler"},
		{Command: "week", Description: "Bu hafta bitecekler"},
		{Command: "summary", Description: "Genel özet"},
		{Command: "papers", Description: "Son makaleler"},
		{Command: "scan", Description: "Makale taraması başlat"},
		{Command: "goals", Description: "Yıllık hedefler"},
		{Command: "templates", Description: "Örnek kalıplar"},
	}
	if err := bot.SetMyCommands(commands); err != nil {
		logger.Warnf(ctx, "Failed to publish bot commands: %v", err)
	}
}
