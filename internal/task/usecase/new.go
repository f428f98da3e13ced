package usecase

import (
	"github.com/blc10/research-assistant/internal/task"
	"github.com/blc10/research-assistant/internal/task/repository"
	"github.com/blc10/research-assistant/pkg/datemath"
	pkgLog "github.com/blc10/research-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	dates *datemath.Parser
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dates *datemath.Parser) task.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
	}
}
