package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/llmprovider"
)

// generate sends one system+user prompt pair and returns the cleaned JSON text.
func (b *Backend) generate(ctx context.Context, system, user string) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: system}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: user}}},
		},
		Temperature: temperature,
		MaxTokens:   maxOutputTokens,
		JSONOutput:  true,
	}

	resp, err := b.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	b.l.Debugf(ctx, "ai.Backend.generate: raw response: %s", text)

	body, _ := llmprovider.ExtractJSON(text)
	return body, nil
}

// toParsedTask fills defaults for missing fields and normalizes the due date.
// defaultName is used when the model returns no name.
func (b *Backend) toParsedTask(ctx context.Context, t llmTask, defaultName string, now time.Time) model.ParsedTask {
	task := model.ParsedTask{
		Name:        strings.TrimSpace(t.Name),
		Assignee:    strings.TrimSpace(t.Assignee),
		Description: strings.TrimSpace(t.Description),
	}
	if task.Name == "" {
		task.Name = defaultName
	}
	if task.Assignee == "" {
		task.Assignee = model.DefaultAssignee
	}

	if p, ok := model.ParsePriority(t.Priority); ok {
		task.Priority = p
	} else {
		task.Priority = model.DefaultPriority
	}

	if t.DueDate != "" {
		due, ok := b.parseDue(t.DueDate)
		if !ok {
			b.l.Warnf(ctx, "ai.Backend.toParsedTask: ignoring unparseable due date %q", t.DueDate)
		} else {
			due = notBefore(due, now)
			task.DueAt = &due
		}
	}
	return task
}

// parseDue accepts RFC3339, a zone-less date-time in the parser's timezone, or
// a bare date, which means the end of that day.
func (b *Backend) parseDue(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	loc := b.dates.Location()

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	for _, layout := range localDueLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	if t, err := time.ParseInLocation(dateOnlyLayout, s, loc); err == nil {
		return b.dates.EndOfDay(b.dates.StartOfDay(t)), true
	}
	return time.Time{}, false
}

// notBefore truncates due to seconds and moves it forward a year at a time
// until it is not before now.
func notBefore(due, now time.Time) time.Time {
	due = due.Truncate(time.Second)
	for due.Before(now) {
		due = due.AddDate(1, 0, 0)
	}
	return due
}
