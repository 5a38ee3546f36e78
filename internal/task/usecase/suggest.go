package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
)

// Suggest asks the LLM for related subtasks. Suggestions are best-effort:
// a missing or failing suggester yields an empty list, not an error.
func (uc *implUseCase) Suggest(ctx context.Context, sc model.Scope, input task.SuggestInput) (task.SuggestOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return task.SuggestOutput{}, task.ErrEmptyInput
	}
	if uc.suggester == nil {
		return task.SuggestOutput{Suggestions: []string{}}, nil
	}

	suggestions, err := uc.suggester.Suggest(ctx, text)
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.Suggest: %v", err)
		return task.SuggestOutput{Suggestions: []string{}}, nil
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	return task.SuggestOutput{Suggestions: suggestions}, nil
}
