package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	repo "smart-task-manager/internal/task/repository"
)

// List returns the scope's tasks filtered and sorted per input.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt := repo.ListTasksOptions{
		Assignee: strings.TrimSpace(input.Assignee),
		Search:   input.Search,
		Owner:    sc.UserID,
		OrderBy:  repo.OrderByDueDate,
	}

	if input.Priority != "" {
		p, ok := model.ParsePriority(input.Priority)
		if !ok {
			return task.ListOutput{}, task.ErrInvalidPriority
		}
		opt.Priority = p
	}
	if input.SortBy != "" {
		orderBy, ok := sortFields[strings.ToLower(strings.TrimSpace(input.SortBy))]
		if !ok {
			return task.ListOutput{}, task.ErrInvalidSortField
		}
		opt.OrderBy = orderBy
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Assignees returns the distinct assignees of the scope's tasks in first-seen order.
func (uc *implUseCase) Assignees(ctx context.Context, sc model.Scope) ([]string, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Owner: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Assignees: ListTasks: %v", err)
		return nil, err
	}

	seen := make(map[string]struct{}, len(tasks))
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.Assignee]; ok {
			continue
		}
		seen[t.Assignee] = struct{}{}
		out = append(out, t.Assignee)
	}
	return out, nil
}
