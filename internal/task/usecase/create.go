package usecase

import (
	"context"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	repo "smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
)

// Create validates and stores one structured task, optionally mirroring it to Google Calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	p := input.Task
	if subtasks := uc.checklist.Render(input.Subtasks); subtasks != "" {
		p.Description = strings.TrimSpace(strings.TrimSpace(p.Description) + "\n\n" + subtasks)
	}

	t, err := uc.create(ctx, sc, p, input.SyncCalendar)
	if err != nil {
		return task.CreateOutput{}, err
	}
	return task.CreateOutput{Task: t}, nil
}

// CreateFromText parses the text (or transcript) and stores every task found.
// Creation is not atomic: when storing the k-th task fails, the output still
// carries the tasks stored before it alongside the error.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input task.CreateFromTextInput) (task.CreateBulkOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.CreateBulkOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "task.usecase.CreateFromText: user=%s transcript=%t input_length=%d", sc.UserID, input.Transcript, len(input.Text))

	now := uc.now(input.Now)
	var parsed []model.ParsedTask
	if input.Transcript {
		tasks, err := uc.backend.ExtractTasks(ctx, input.Text, now)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.CreateFromText: ExtractTasks: %v", err)
			return task.CreateBulkOutput{}, err
		}
		parsed = tasks
	} else {
		t, err := uc.backend.ParseTask(ctx, input.Text, now)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.CreateFromText: ParseTask: %v", err)
			return task.CreateBulkOutput{}, err
		}
		parsed = []model.ParsedTask{t}
	}
	if len(parsed) == 0 {
		return task.CreateBulkOutput{}, task.ErrNoTasksParsed
	}

	created := make([]model.Task, 0, len(parsed))
	for _, p := range parsed {
		t, err := uc.create(ctx, sc, p, input.SyncCalendar)
		if err != nil {
			uc.l.Errorf(ctx, "task.usecase.CreateFromText: stored %d of %d: %v", len(created), len(parsed), err)
			return task.CreateBulkOutput{Tasks: created, TaskCount: len(created)}, err
		}
		created = append(created, t)
	}

	uc.l.Infof(ctx, "task.usecase.CreateFromText: created %d task(s)", len(created))
	return task.CreateBulkOutput{Tasks: created, TaskCount: len(created)}, nil
}

func (uc *implUseCase) create(ctx context.Context, sc model.Scope, p model.ParsedTask, syncCalendar bool) (model.Task, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return model.Task{}, task.ErrEmptyName
	}
	priority, err := priorityOrDefault(string(p.Priority))
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Name:        name,
		Assignee:    uc.coalesce(strings.TrimSpace(p.Assignee), model.DefaultAssignee),
		DueAt:       p.DueAt,
		Priority:    priority,
		Description: strings.TrimSpace(p.Description),
		Owner:       sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.create: CreateTask: %v", err)
		return model.Task{}, err
	}

	if syncCalendar {
		t = uc.tryCreateCalendarEvent(ctx, t)
	}
	return t, nil
}

// tryCreateCalendarEvent mirrors a dated task to Google Calendar and stores the event link.
// Failures are logged and leave the task unchanged.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) model.Task {
	if uc.calendar == nil || t.DueAt == nil {
		return t
	}

	event, err := uc.calendar.CreateTaskEvent(ctx, gcalendar.TaskEvent{
		CalendarID: uc.calendarID,
		Title:      t.Name,
		Details:    calendarDescription(t),
		Due:        *t.DueAt,
		ColorID:    priorityColors[t.Priority],
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.tryCreateCalendarEvent: task=%s: %v", t.ID, err)
		return t
	}

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:           t.ID,
		Name:         t.Name,
		Assignee:     t.Assignee,
		DueAt:        t.DueAt,
		Priority:     t.Priority,
		Description:  t.Description,
		Completed:    t.Completed,
		CalendarLink: event.HtmlLink,
		Owner:        t.Owner,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.tryCreateCalendarEvent: UpdateTask: %v", err)
		return t
	}
	return updated
}

func calendarDescription(t model.Task) string {
	var sb strings.Builder
	sb.WriteString("Assignee: " + t.Assignee + "\n")
	sb.WriteString("Priority: " + string(t.Priority) + " (" + t.Priority.Label() + ")")
	if t.Description != "" {
		sb.WriteString("\n\n" + t.Description)
	}
	return sb.String()
}
