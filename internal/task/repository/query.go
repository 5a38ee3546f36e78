package repository

import (
	"cmp"
	"slices"
	"strings"

	"smart-task-manager/internal/model"
)

// Matches reports whether t passes every non-empty filter in opt.
// Search is a case-insensitive substring of the name or assignee.
func Matches(t model.Task, opt ListTasksOptions) bool {
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	if opt.Assignee != "" && t.Assignee != opt.Assignee {
		return false
	}
	if opt.Owner != "" && t.Owner != opt.Owner {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(opt.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Assignee), search)
}

// Sort orders tasks in place by orderBy. Ties, and an unknown or empty
// orderBy, keep the incoming order.
func Sort(tasks []model.Task, orderBy string) {
	if cmpFn := orderings[orderBy]; cmpFn != nil {
		slices.SortStableFunc(tasks, cmpFn)
	}
}

var orderings = map[string]func(a, b model.Task) int{
	OrderByDueDate: func(a, b model.Task) int {
		switch {
		case a.DueAt == nil && b.DueAt == nil:
			return 0
		case a.DueAt == nil:
			return 1
		case b.DueAt == nil:
			return -1
		}
		return a.DueAt.Compare(*b.DueAt)
	},
	OrderByPriority: func(a, b model.Task) int {
		return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
	},
	OrderByAssignee: func(a, b model.Task) int {
		return strings.Compare(strings.ToLower(a.Assignee), strings.ToLower(b.Assignee))
	},
}
