package task

import (
	"time"

	"smart-task-manager/internal/model"
)

// Sort fields accepted by List.
const (
	SortByDueDate  = "due_date"
	SortByPriority = "priority"
	SortByAssignee = "assignee"
)

// --- UseCase Inputs ---

// ParseInput is the input for single-task parsing.
// Now overrides the reference moment; nil means the current time.
type ParseInput struct {
	Text string
	Now  *time.Time
}

// ExtractInput is the input for meeting transcript extraction.
type ExtractInput struct {
	Transcript string
	Now        *time.Time
}

type SuggestInput struct {
	Text string
}

// CreateInput stores an already structured task.
type CreateInput struct {
	Task         model.ParsedTask
	Subtasks     []string // appended to the description as an unchecked checklist
	SyncCalendar bool     // also create a Google Calendar event when the task has a due date
}

// CreateFromTextInput parses and stores in one step.
type CreateFromTextInput struct {
	Text         string
	Transcript   bool // treat Text as a meeting transcript
	SyncCalendar bool
	Now          *time.Time
}

// ListInput filters and orders stored tasks. Empty fields do not filter.
type ListInput struct {
	Priority string
	Assignee string
	Search   string // case-insensitive substring of name or assignee
	SortBy   string // one of the SortBy constants, default SortByDueDate
}

// UpdateInput is a partial update: empty strings and nil pointers keep the stored value.
type UpdateInput struct {
	ID          string
	Name        string
	Assignee    string
	Priority    string
	DueAt       *time.Time
	ClearDueAt  bool
	Description *string
}

// UpdateSubtaskInput checks or unchecks the checklist items whose text contains Text.
type UpdateSubtaskInput struct {
	ID      string
	Text    string
	Checked bool
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Task    model.ParsedTask
	Backend string // name of the configured parser backend
}

type ExtractOutput struct {
	Tasks   []model.ParsedTask
	Count   int
	Backend string
}

type SuggestOutput struct {
	Suggestions []string
}

type CreateOutput struct {
	Task model.Task
}

// CreateBulkOutput is the result of CreateFromText.
type CreateBulkOutput struct {
	Tasks     []model.Task
	TaskCount int
}

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type DetailOutput struct {
	Task model.Task
}

type UpdateOutput struct {
	Task model.Task
}
