package model

import "time"

// Default values used when a field cannot be extracted from free text.
const (
	DefaultAssignee = "Unassigned"
	DefaultTaskName = "Untitled Task"
)

// ParsedTask is a task extracted from natural-language input.
// DueAt is nil when no date or time expression was found.
type ParsedTask struct {
	Name        string     `json:"name" yaml:"name"`
	Assignee    string     `json:"assignee" yaml:"assignee"`
	DueAt       *time.Time `json:"due_at,omitempty" yaml:"due_at,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
}

// Task is a stored task.
type Task struct {
	ID           string
	Name         string
	Assignee     string
	DueAt        *time.Time
	Priority     Priority
	Description  string
	Completed    bool
	CalendarLink string // Google Calendar event link, empty when not synced
	Owner        string // Scope.UserID of the creator, empty for anonymous callers
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Parsed returns the parsed-task view of t.
func (t Task) Parsed() ParsedTask {
	return ParsedTask{
		Name:        t.Name,
		Assignee:    t.Assignee,
		DueAt:       t.DueAt,
		Priority:    t.Priority,
		Description: t.Description,
	}
}
