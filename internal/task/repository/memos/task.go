package memos

import (
	"context"
	"errors"
	"slices"

	"smart-task-manager/internal/model"
	repo "smart-task-manager/internal/task/repository"
)

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	content, err := encodeContent(frontMatter{
		Name:     opt.Name,
		Assignee: opt.Assignee,
		Priority: string(opt.Priority),
		DueAt:    opt.DueAt,
		Owner:    opt.Owner,
	}, opt.Description)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{Content: content, Visibility: defaultVisibility})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return memoToTask(*memo)
}

// GetTask returns a zero-value Task when the memo does not exist or is not a task.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	memo, err := r.client.GetMemo(ctx, id)
	if errors.Is(err, ErrMemoNotFound) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, err
	}

	t, err := memoToTask(*memo)
	if errors.Is(err, errNotATask) {
		return model.Task{}, nil
	}
	return t, err
}

// ListTasks pages through every tagged memo, then filters and orders in process.
// Ties keep creation order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	token := ""
	for {
		memos, next, err := r.client.ListMemos(ctx, listFilter, listPageSize, token)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
			return nil, err
		}
		for _, m := range memos {
			t, err := memoToTask(m)
			if err != nil {
				r.l.Debugf(ctx, "%s: skip memo %s: %v", r.dsn("ListTasks"), m.Name, err)
				continue
			}
			if repo.Matches(t, opt) {
				out = append(out, t)
			}
		}
		if next == "" {
			break
		}
		token = next
	}

	// Memos lists newest first.
	slices.SortStableFunc(out, func(a, b model.Task) int { return a.CreatedAt.Compare(b.CreatedAt) })
	repo.Sort(out, opt.OrderBy)
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	content, err := encodeContent(frontMatter{
		Name:         opt.Name,
		Assignee:     opt.Assignee,
		Priority:     string(opt.Priority),
		DueAt:        opt.DueAt,
		Completed:    opt.Completed,
		CalendarLink: opt.CalendarLink,
		Owner:        opt.Owner,
	}, opt.Description)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	memo, err := r.client.UpdateMemo(ctx, opt.ID, content)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return memoToTask(*memo)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.DeleteMemo(ctx, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
