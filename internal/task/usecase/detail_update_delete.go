package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	repo "smart-task-manager/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.getExisting(ctx, sc, "Detail", id)
	if err != nil {
		return task.DetailOutput{}, err
	}
	return task.DetailOutput{Task: t}, nil
}

// Update applies a partial update. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	existing, err := uc.getExisting(ctx, sc, "Update", input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	priority := existing.Priority
	if input.Priority != "" {
		p, ok := model.ParsePriority(input.Priority)
		if !ok {
			return task.UpdateOutput{}, task.ErrInvalidPriority
		}
		priority = p
	}

	dueAt := existing.DueAt
	switch {
	case input.ClearDueAt:
		dueAt = nil
	case input.DueAt != nil:
		dueAt = input.DueAt
	}

	description := existing.Description
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           existing.ID,
		Name:         uc.coalesce(strings.TrimSpace(input.Name), existing.Name),
		Assignee:     uc.coalesce(strings.TrimSpace(input.Assignee), existing.Assignee),
		DueAt:        dueAt,
		Priority:     priority,
		Description:  description,
		Completed:    existing.Completed,
		CalendarLink: existing.CalendarLink,
		Owner:        existing.Owner,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: t}, nil
}

// ToggleComplete flips the completed flag of a task.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (task.UpdateOutput, error) {
	existing, err := uc.getExisting(ctx, sc, "ToggleComplete", id)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	completed := !existing.Completed
	description := existing.Description
	if completed {
		description = uc.checklist.SetAll(description, true)
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           existing.ID,
		Name:         existing.Name,
		Assignee:     existing.Assignee,
		DueAt:        existing.DueAt,
		Priority:     existing.Priority,
		Description:  description,
		Completed:    completed,
		CalendarLink: existing.CalendarLink,
		Owner:        existing.Owner,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleComplete: UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: t}, nil
}

// UpdateSubtask checks or unchecks matching checklist items and recomputes the completed flag.
func (uc *implUseCase) UpdateSubtask(ctx context.Context, sc model.Scope, input task.UpdateSubtaskInput) (task.UpdateOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.UpdateOutput{}, task.ErrEmptySubtask
	}
	existing, err := uc.getExisting(ctx, sc, "UpdateSubtask", input.ID)
	if err != nil {
		return task.UpdateOutput{}, err
	}

	description, n := uc.checklist.SetItem(existing.Description, input.Text, input.Checked)
	if n == 0 {
		return task.UpdateOutput{}, task.ErrSubtaskNotFound
	}

	t, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           existing.ID,
		Name:         existing.Name,
		Assignee:     existing.Assignee,
		DueAt:        existing.DueAt,
		Priority:     existing.Priority,
		Description:  description,
		Completed:    uc.checklist.IsComplete(description),
		CalendarLink: existing.CalendarLink,
		Owner:        existing.Owner,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateSubtask: UpdateTask: %v", err)
		return task.UpdateOutput{}, err
	}
	return task.UpdateOutput{Task: t}, nil
}

// Delete removes a task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getExisting(ctx, sc, "Delete", id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: DeleteTask: %v", err)
		return err
	}
	uc.l.Infof(ctx, "task.usecase.Delete: user=%s task=%s", sc.UserID, id)
	return nil
}

// getExisting loads a task the scope may access. Tasks owned by another user
// are reported as not found.
func (uc *implUseCase) getExisting(ctx context.Context, sc model.Scope, method, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.%s: GetTask: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	if !sc.CanAccess(t) {
		uc.l.Warnf(ctx, "task.usecase.%s: user=%s denied task=%s", method, sc.UserID, id)
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
