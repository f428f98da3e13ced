package http

import (
	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/goal"
	"github.com/blc10/research-assistant/internal/intent"
	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/internal/storage"
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/pkg/datemath"
	"github.com/blc10/research-assistant/pkg/log"
)

// Handler is the public interface for the dashboard HTTP delivery layer.
type Handler interface {
	Overview(c *gin.Context)

	ListTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	CompleteTask(c *gin.Context)
	DeleteTask(c *gin.Context)

	ListPapers(c *gin.Context)
	ReadPaper(c *gin.Context)

	ListGoals(c *gin.Context)
	CreateGoal(c *gin.Context)
	UpdateGoalProgress(c *gin.Context)

	GetSettings(c *gin.Context)
	UpdateSettings(c *gin.Context)
}

type handler struct {
	l        log.Logger
	taskUC   task.UseCase
	paperUC  paper.UseCase
	goalUC   goal.UseCase
	settings *storage.Settings
	dates    *datemath.Parser

	extractor  *intent.Extractor
	normalizer *intent.Normalizer
}

// New creates the dashboard HTTP handler. Free-text task input goes
// through the same date extraction and title cleanup as chat messages.
func New(
	l log.Logger,
	taskUC task.UseCase,
	paperUC paper.UseCase,
	goalUC goal.UseCase,
	settings *storage.Settings,
	dates *datemath.Parser,
) Handler {
	return &handler{
		l:          l,
		taskUC:     taskUC,
		paperUC:    paperUC,
		goalUC:     goalUC,
		settings:   settings,
		dates:      dates,
		extractor:  intent.NewExtractor(dates),
		normalizer: intent.NewNormalizer(intent.DefaultFillers()),
	}
}
