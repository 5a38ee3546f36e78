package telegram

import (
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/model"
)

const dueLayout = "Mon 02 Jan 15:04"

func formatTask(t model.Task) string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteString(" (" + t.Assignee + ", " + string(t.Priority) + " " + t.Priority.Label())
	if t.DueAt != nil {
		sb.WriteString(", due " + t.DueAt.Format(dueLayout))
	}
	sb.WriteString(")")
	return sb.String()
}

func formatCreated(tasks []model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Created %d task(s):\n", len(tasks))
	for i, t := range tasks {
		fmt.Fprintf(&sb, "\n%d. %s\n   id: %s", i+1, formatTask(t), t.ID)
		if t.CalendarLink != "" {
			sb.WriteString("\n   calendar: " + t.CalendarLink)
		}
	}
	return sb.String()
}

// formatList shows up to listLimit open tasks, overdue ones marked.
func formatList(tasks []model.Task, now time.Time) string {
	open := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return "No open tasks."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Open tasks (%d):\n", len(open))
	for i, t := range open {
		if i == listLimit {
			fmt.Fprintf(&sb, "\n...and %d more", len(open)-listLimit)
			break
		}
		fmt.Fprintf(&sb, "\n%d. %s", i+1, formatTask(t))
		if t.DueAt != nil && t.DueAt.Before(now) {
			sb.WriteString(" [overdue]")
		}
		sb.WriteString("\n   id: " + t.ID)
	}
	return sb.String()
}

func formatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return "No suggestions available right now."
	}
	var sb strings.Builder
	sb.WriteString("Suggested subtasks:\n")
	for _, s := range suggestions {
		sb.WriteString("\n- " + s)
	}
	return sb.String()
}

func formatToggle(t model.Task) string {
	if t.Completed {
		return "Completed: " + t.Name
	}
	return "Reopened: " + t.Name
}
