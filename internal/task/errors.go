package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrNoTasksParsed    = errors.New("no tasks parsed from input")
	ErrEmptyName        = errors.New("task name is empty")
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidPriority  = errors.New("priority must be one of P1, P2, P3, P4")
	ErrInvalidSortField = errors.New("sort_by must be one of due_date, priority, assignee")
	ErrEmptySubtask     = errors.New("subtask text is empty")
	ErrSubtaskNotFound  = errors.New("subtask not found")
)
