package repository

import (
	"time"

	"smart-task-manager/internal/model"
)

// Orderings accepted by ListTasks. An empty OrderBy keeps insertion order.
const (
	OrderByDueDate  = "due_date"
	OrderByPriority = "priority"
	OrderByAssignee = "assignee"
)

// CreateTaskOptions holds the parameters for storing a new task.
type CreateTaskOptions struct {
	Name        string
	Assignee    string
	DueAt       *time.Time
	Priority    model.Priority
	Description string
	Owner       string
}

// ListTasksOptions holds filter and ordering parameters. Empty fields do not filter.
type ListTasksOptions struct {
	Priority model.Priority
	Assignee string
	Search   string
	Owner    string
	OrderBy  string
}

// UpdateTaskOptions replaces every mutable field of the task with the given ID.
// Owner is not mutable; it is passed through for stores that rewrite the whole record.
type UpdateTaskOptions struct {
	ID           string
	Name         string
	Assignee     string
	DueAt        *time.Time
	Priority     model.Priority
	Description  string
	Completed    bool
	CalendarLink string
	Owner        string
}
