package http

import (
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
)

const headerUserID = "X-User-ID"

// --- Request DTOs ---

type parseReq struct {
	Text string     `json:"text" binding:"required,max=2000"`
	Now  *time.Time `json:"now"` // RFC3339, defaults to the server clock
}

func (r parseReq) validate() error { return nil }

func (r parseReq) toInput() task.ParseInput {
	return task.ParseInput{Text: r.Text, Now: r.Now}
}

// ---

type extractReq struct {
	Transcript string     `json:"transcript" binding:"required,max=50000"`
	Now        *time.Time `json:"now"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{Transcript: r.Transcript, Now: r.Now}
}

// ---

type suggestReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r suggestReq) validate() error { return nil }

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{Text: r.Text}
}

// ---

type createReq struct {
	Name         string     `json:"name"          binding:"required,max=255"`
	Assignee     string     `json:"assignee"      binding:"max=100"`
	DueAt        *time.Time `json:"due_at"`
	Priority     string     `json:"priority"      binding:"omitempty,oneof=P1 P2 P3 P4 p1 p2 p3 p4"`
	Description  string     `json:"description"   binding:"max=2000"`
	Subtasks     []string   `json:"subtasks"      binding:"max=20,dive,max=200"`
	SyncCalendar bool       `json:"sync_calendar"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Task: model.ParsedTask{
			Name:        r.Name,
			Assignee:    r.Assignee,
			DueAt:       r.DueAt,
			Priority:    model.Priority(r.Priority),
			Description: r.Description,
		},
		Subtasks:     r.Subtasks,
		SyncCalendar: r.SyncCalendar,
	}
}

// ---

type quickReq struct {
	Text         string     `json:"text"          binding:"required,max=50000"`
	Transcript   bool       `json:"transcript"`
	SyncCalendar bool       `json:"sync_calendar"`
	Now          *time.Time `json:"now"`
}

func (r quickReq) validate() error { return nil }

func (r quickReq) toInput() task.CreateFromTextInput {
	return task.CreateFromTextInput{
		Text:         r.Text,
		Transcript:   r.Transcript,
		SyncCalendar: r.SyncCalendar,
		Now:          r.Now,
	}
}

// ---

type listReq struct {
	Priority string `form:"priority"`
	Assignee string `form:"assignee"`
	Search   string `form:"q"`
	SortBy   string `form:"sort_by"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: r.Priority,
		Assignee: r.Assignee,
		Search:   r.Search,
		SortBy:   r.SortBy,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Name        string     `json:"name"         binding:"omitempty,max=255"`
	Assignee    string     `json:"assignee"     binding:"omitempty,max=100"`
	Priority    string     `json:"priority"     binding:"omitempty,oneof=P1 P2 P3 P4 p1 p2 p3 p4"`
	DueAt       *time.Time `json:"due_at"`
	ClearDueAt  bool       `json:"clear_due_at"`
	Description *string    `json:"description"  binding:"omitempty,max=2000"`
}

func (r updateReq) validate() error {
	if r.Name == "" && r.Assignee == "" && r.Priority == "" && r.DueAt == nil && !r.ClearDueAt && r.Description == nil {
		return errEmptyUpdateBody
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		Assignee:    r.Assignee,
		Priority:    r.Priority,
		DueAt:       r.DueAt,
		ClearDueAt:  r.ClearDueAt,
		Description: r.Description,
	}
}

// ---

type subtaskReq struct {
	ID      string `json:"-"`
	Text    string `json:"text"    binding:"required,max=200"`
	Checked bool   `json:"checked"`
}

func (r subtaskReq) validate() error { return nil }

func (r subtaskReq) toInput() task.UpdateSubtaskInput {
	return task.UpdateSubtaskInput{ID: r.ID, Text: r.Text, Checked: r.Checked}
}

// --- Response DTOs ---

type parsedTaskResp struct {
	Name          string     `json:"name"`
	Assignee      string     `json:"assignee"`
	DueAt         *time.Time `json:"due_at"`
	Priority      string     `json:"priority"`
	PriorityLabel string     `json:"priority_label"`
	Description   string     `json:"description,omitempty"`
}

func newParsedTaskResp(t model.ParsedTask) parsedTaskResp {
	return parsedTaskResp{
		Name:          t.Name,
		Assignee:      t.Assignee,
		DueAt:         t.DueAt,
		Priority:      string(t.Priority),
		PriorityLabel: t.Priority.Label(),
		Description:   t.Description,
	}
}

type taskResp struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Assignee      string         `json:"assignee"`
	DueAt         *time.Time     `json:"due_at"`
	Priority      string         `json:"priority"`
	PriorityLabel string         `json:"priority_label"`
	Description   string         `json:"description"`
	Completed     bool           `json:"completed"`
	CalendarLink  string         `json:"calendar_link,omitempty"`
	Checklist     *checklistResp `json:"checklist,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type checklistResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	var cl *checklistResp
	if st := h.checklist.Stats(t.Description); st.Total > 0 {
		cl = &checklistResp{Total: st.Total, Completed: st.Completed, Progress: st.Progress}
	}

	return taskResp{
		ID:            t.ID,
		Name:          t.Name,
		Assignee:      t.Assignee,
		DueAt:         t.DueAt,
		Priority:      string(t.Priority),
		PriorityLabel: t.Priority.Label(),
		Description:   t.Description,
		Completed:     t.Completed,
		CalendarLink:  t.CalendarLink,
		Checklist:     cl,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func (h *handler) newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = h.newTaskResp(t)
	}
	return out
}

type parseResp struct {
	Task    parsedTaskResp `json:"task"`
	Backend string         `json:"backend"`
}

func (h *handler) newParseResp(out task.ParseOutput) parseResp {
	return parseResp{Task: newParsedTaskResp(out.Task), Backend: out.Backend}
}

type extractResp struct {
	Tasks   []parsedTaskResp `json:"tasks"`
	Count   int              `json:"count"`
	Backend string           `json:"backend"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	tasks := make([]parsedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newParsedTaskResp(t)
	}
	return extractResp{Tasks: tasks, Count: out.Count, Backend: out.Backend}
}

type suggestResp struct {
	Suggestions []string `json:"suggestions"`
}

func (h *handler) newSuggestResp(out task.SuggestOutput) suggestResp {
	return suggestResp{Suggestions: out.Suggestions}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: h.newTaskResp(out.Task)}
}

type quickResp struct {
	Tasks     []taskResp `json:"tasks"`
	TaskCount int        `json:"task_count"`
}

func (h *handler) newQuickResp(out task.CreateBulkOutput) quickResp {
	return quickResp{Tasks: h.newTaskResps(out.Tasks), TaskCount: out.TaskCount}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: h.newTaskResps(out.Tasks), Total: out.Total}
}

type assigneesResp struct {
	Assignees []string `json:"assignees"`
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: h.newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: h.newTaskResp(out.Task)}
}
