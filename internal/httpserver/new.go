package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	dashboardHTTP "github.com/blc10/research-assistant/internal/dashboard/delivery/http"
	"github.com/blc10/research-assistant/internal/middleware"
	tgDelivery "github.com/blc10/research-assistant/internal/task/delivery/telegram"
	"github.com/blc10/research-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	telegramHandler  tgDelivery.Handler
	dashboardHandler dashboardHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	TelegramHandler  tgDelivery.Handler
	DashboardHandler dashboardHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		telegramHandler:  cfg.TelegramHandler,
		dashboardHandler: cfg.DashboardHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	if srv.dashboardHandler != nil {
		api := srv.gin.Group("/api/v1")
		dashboardHTTP.RegisterRoutes(api, srv.dashboardHandler, middleware.New(srv.l))
		srv.l.Infof(ctx, "Dashboard API registered under /api/v1")
	}
}
