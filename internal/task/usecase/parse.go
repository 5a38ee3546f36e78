package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
)

// Parse turns one task description into a ParsedTask using the configured backend.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input task.ParseInput) (task.ParseOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.ParseOutput{}, task.ErrEmptyInput
	}

	parsed, err := uc.backend.ParseTask(ctx, input.Text, uc.now(input.Now))
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Parse: backend=%s: %v", uc.backend.Name(), err)
		return task.ParseOutput{}, err
	}

	return task.ParseOutput{Task: parsed, Backend: uc.backend.Name()}, nil
}

// Extract pulls every assigned action item out of a meeting transcript.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.Transcript) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}

	tasks, err := uc.backend.ExtractTasks(ctx, input.Transcript, uc.now(input.Now))
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Extract: backend=%s: %v", uc.backend.Name(), err)
		return task.ExtractOutput{}, err
	}
	if tasks == nil {
		tasks = []model.ParsedTask{}
	}

	uc.l.Infof(ctx, "task.usecase.Extract: %d task(s) found", len(tasks))
	return task.ExtractOutput{Tasks: tasks, Count: len(tasks), Backend: uc.backend.Name()}, nil
}
