package usecase

import (
	"context"
	"time"

	"smart-task-manager/internal/checklist"
	"smart-task-manager/internal/parser"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
	pkgLog "smart-task-manager/pkg/log"
)

// Suggester proposes follow-up subtasks for a task description.
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]string, error)
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo       repository.Repository
	backend    parser.Backend
	suggester  Suggester          // nil when no LLM is configured
	calendar   gcalendar.Calendar // nil when calendar sync is disabled
	calendarID string
	checklist  checklist.Service
	l          pkgLog.Logger
	clock      func() time.Time
}

// New creates a task UseCase. suggester and calendar may be nil.
func New(
	repo repository.Repository,
	backend parser.Backend,
	suggester Suggester,
	calendar gcalendar.Calendar,
	calendarID string,
	l pkgLog.Logger,
) task.UseCase {
	return &implUseCase{
		repo:       repo,
		backend:    backend,
		suggester:  suggester,
		calendar:   calendar,
		calendarID: calendarID,
		checklist:  checklist.New(),
		l:          l,
		clock:      time.Now,
	}
}
