package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"smart-task-manager/internal/model"
	repo "smart-task-manager/internal/task/repository"
)

// CreateTask stores a new task under a fresh UUID.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	now := r.clock()
	t := model.Task{
		ID:          id.String(),
		Name:        opt.Name,
		Assignee:    opt.Assignee,
		DueAt:       copyTime(opt.DueAt),
		Priority:    opt.Priority,
		Description: opt.Description,
		Owner:       opt.Owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return clone(t), nil
}

// GetTask returns the task with the given ID, or a zero-value Task when not found.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, nil
	}
	return clone(t), nil
}

// ListTasks returns the tasks matching every non-empty filter, ordered by opt.OrderBy.
// Ties keep insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		if t := r.tasks[id]; repo.Matches(t, opt) {
			out = append(out, clone(t))
		}
	}
	r.mu.RUnlock()

	repo.Sort(out, opt.OrderBy)
	return out, nil
}

// UpdateTask replaces the mutable fields of an existing task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[opt.ID]
	if !ok {
		r.l.Errorf(ctx, "%s: task %s does not exist", r.dsn("UpdateTask"), opt.ID)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	t.Name = opt.Name
	t.Assignee = opt.Assignee
	t.DueAt = copyTime(opt.DueAt)
	t.Priority = opt.Priority
	t.Description = opt.Description
	t.Completed = opt.Completed
	t.CalendarLink = opt.CalendarLink
	t.UpdatedAt = r.clock()

	r.tasks[t.ID] = t
	return clone(t), nil
}

// DeleteTask removes a task.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		r.l.Errorf(ctx, "%s: task %s does not exist", r.dsn("DeleteTask"), id)
		return repo.ErrFailedToDelete
	}
	delete(r.tasks, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

// clone copies t so callers cannot mutate stored state through DueAt.
func clone(t model.Task) model.Task {
	t.DueAt = copyTime(t.DueAt)
	return t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
