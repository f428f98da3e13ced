package usecase

import (
	"github.com/blc10/research-assistant/internal/paper"
	"github.com/blc10/research-assistant/internal/paper/repository"
	"github.com/blc10/research-assistant/internal/storage"
	"github.com/blc10/research-assistant/pkg/arxiv"
	"github.com/blc10/research-assistant/pkg/datemath"
	"github.com/blc10/research-assistant/pkg/gemini"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
	"github.com/blc10/research-assistant/pkg/semanticscholar"
)

// Config carries the scan tuning and the fallbacks used when the settings
// store has no override yet.
type Config struct {
	MaxPapersPerDay int
	ThesisTopic     string
	PaperKeywords   []string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	settings *storage.Settings
	arxiv    *arxiv.Client
	semantic *semanticscholar.Client
	llm      gemini.IGemini
	dates    *datemath.Parser
	cfg      Config
}

// New creates a new paper UseCase instance. The llm client may be nil, in
// which case scans store papers unanalyzed.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	settings *storage.Settings,
	arxivClient *arxiv.Client,
	semanticClient *semanticscholar.Client,
	llm gemini.IGemini,
	dates *datemath.Parser,
	cfg Config,
) paper.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		settings: settings,
		arxiv:    arxivClient,
		semantic: semanticClient,
		llm:      llm,
		dates:    dates,
		cfg:      cfg,
	}
}
