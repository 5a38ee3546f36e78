package http

import (
	"smart-task-manager/internal/checklist"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        task.UseCase
	checklist checklist.Service
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		checklist: checklist.New(),
	}
}
