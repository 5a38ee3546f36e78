package task

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse turns one free-text task description into a structured task without storing it.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (ParseOutput, error)
	// Extract pulls the assigned action items out of a meeting transcript without storing them.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)
	// Suggest proposes related subtasks. It never fails because the suggestion service is down.
	Suggest(ctx context.Context, sc model.Scope, input SuggestInput) (SuggestOutput, error)

	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	// CreateFromText parses text (or a transcript) and stores every task found.
	CreateFromText(ctx context.Context, sc model.Scope, input CreateFromTextInput) (CreateBulkOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// ToggleComplete flips the completed flag. Completing a task also checks its whole checklist.
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (UpdateOutput, error)
	// UpdateSubtask sets checklist items in the description. The task is completed
	// exactly when every item is checked.
	UpdateSubtask(ctx context.Context, sc model.Scope, input UpdateSubtaskInput) (UpdateOutput, error)
	// Assignees lists the distinct assignees of stored tasks in first-seen order.
	Assignees(ctx context.Context, sc model.Scope) ([]string, error)
}
