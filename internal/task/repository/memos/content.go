package memos

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"smart-task-manager/internal/model"
)

const (
	frontMatterDelim = "---"
	// TaskTag marks memos created by this repository.
	TaskTag = "#task"
)

var errNotATask = errors.New("memo is not a task")

// frontMatter is the YAML header carrying the structured task fields.
type frontMatter struct {
	Name         string     `yaml:"name"`
	Assignee     string     `yaml:"assignee"`
	Priority     string     `yaml:"priority"`
	DueAt        *time.Time `yaml:"due_at,omitempty"`
	Completed    bool       `yaml:"completed"`
	CalendarLink string     `yaml:"calendar_link,omitempty"`
	Owner        string     `yaml:"owner,omitempty"`
}

// encodeContent renders a task as memo markdown: YAML front matter, the
// description, then the task tag on its own line.
func encodeContent(fm frontMatter, description string) (string, error) {
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(frontMatterDelim + "\n")
	sb.Write(header)
	sb.WriteString(frontMatterDelim + "\n")
	if description = strings.TrimSpace(description); description != "" {
		sb.WriteString(description + "\n\n")
	}
	sb.WriteString(TaskTag)
	return sb.String(), nil
}

// decodeContent is the inverse of encodeContent. Memos without front matter
// return errNotATask.
func decodeContent(content string) (frontMatter, string, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	rest, ok := strings.CutPrefix(content, frontMatterDelim+"\n")
	if !ok {
		return frontMatter{}, "", errNotATask
	}
	header, body, ok := strings.Cut(rest, "\n"+frontMatterDelim+"\n")
	if !ok {
		// Front matter closed at the very end of the memo.
		header, ok = strings.CutSuffix(rest, "\n"+frontMatterDelim)
		if !ok {
			return frontMatter{}, "", errNotATask
		}
		body = ""
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return frontMatter{}, "", fmt.Errorf("unmarshal front matter: %w", err)
	}
	if fm.Name == "" {
		return frontMatter{}, "", errNotATask
	}

	body = strings.TrimSpace(body)
	body = strings.TrimSpace(strings.TrimSuffix(body, TaskTag))
	return fm, body, nil
}

// memoToTask converts a memo into a task. Memos that are not tasks return errNotATask.
func memoToTask(m Memo) (model.Task, error) {
	fm, description, err := decodeContent(m.Content)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		ID:           m.uid(),
		Name:         fm.Name,
		Assignee:     fm.Assignee,
		DueAt:        fm.DueAt,
		Priority:     model.Priority(fm.Priority),
		Description:  description,
		Completed:    fm.Completed,
		CalendarLink: fm.CalendarLink,
		Owner:        fm.Owner,
		CreatedAt:    parseTime(m.CreateTime),
		UpdatedAt:    parseTime(m.UpdateTime),
	}, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
