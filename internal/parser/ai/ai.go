package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/parser"
)

var _ parser.Backend = (*Backend)(nil)

// Name implements parser.Backend.
func (b *Backend) Name() string { return parser.BackendAI }

// ParseTask asks the model to structure one task description.
func (b *Backend) ParseTask(ctx context.Context, text string, now time.Time) (model.ParsedTask, error) {
	now = now.In(b.dates.Location())

	raw, err := b.generate(ctx, parseSystemPrompt, userPrompt("Task description", text, now))
	if err != nil {
		return model.ParsedTask{}, err
	}

	var t llmTask
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		b.l.Errorf(ctx, "ai.Backend.ParseTask: failed to parse LLM response %q: %v", raw, err)
		return model.ParsedTask{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	name := strings.TrimSpace(text)
	if name == "" {
		name = model.DefaultTaskName
	}
	return b.toParsedTask(ctx, t, name, now), nil
}

// ExtractTasks asks the model for the action items of a meeting transcript.
func (b *Backend) ExtractTasks(ctx context.Context, transcript string, now time.Time) ([]model.ParsedTask, error) {
	now = now.In(b.dates.Location())

	raw, err := b.generate(ctx, extractSystemPrompt, userPrompt("Transcript", transcript, now))
	if err != nil {
		return nil, err
	}

	var items []llmTask
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		b.l.Errorf(ctx, "ai.Backend.ExtractTasks: failed to parse LLM response %q: %v", raw, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	tasks := make([]model.ParsedTask, 0, len(items))
	for _, item := range items {
		tasks = append(tasks, b.toParsedTask(ctx, item, model.DefaultTaskName, now))
	}
	return tasks, nil
}

// Suggest returns up to five related subtasks for a task description.
func (b *Backend) Suggest(ctx context.Context, text string) ([]string, error) {
	system := fmt.Sprintf(suggestSystemPrompt, minSuggestions, maxSuggestions)
	raw, err := b.generate(ctx, system, "Task: "+text)
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	suggestions := make([]string, 0, maxSuggestions)
	for _, s := range items {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}
