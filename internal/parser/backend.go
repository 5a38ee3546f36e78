package parser

import (
	"context"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/log"
)

type ruleBackend struct {
	engine *Engine
}

// NewRuleBackend exposes the Engine as a Backend. Its methods never return an error.
func NewRuleBackend(engine *Engine) Backend {
	return ruleBackend{engine: engine}
}

func (b ruleBackend) Name() string { return BackendRule }

func (b ruleBackend) ParseTask(_ context.Context, text string, now time.Time) (model.ParsedTask, error) {
	return b.engine.ParseTask(text, now), nil
}

func (b ruleBackend) ExtractTasks(_ context.Context, transcript string, now time.Time) ([]model.ParsedTask, error) {
	return b.engine.ExtractTasks(transcript, now), nil
}

type fallbackBackend struct {
	primary  Backend
	fallback Backend
	l        log.Logger
}

// WithFallback returns a Backend that calls primary and, when it fails, logs
// the error and answers from fallback instead. The same now is passed to both.
func WithFallback(primary, fallback Backend, l log.Logger) Backend {
	return fallbackBackend{primary: primary, fallback: fallback, l: l}
}

func (b fallbackBackend) Name() string { return b.primary.Name() }

func (b fallbackBackend) ParseTask(ctx context.Context, text string, now time.Time) (model.ParsedTask, error) {
	task, err := b.primary.ParseTask(ctx, text, now)
	if err == nil {
		return task, nil
	}
	b.l.Warnf(ctx, "parser.fallbackBackend.ParseTask: %s backend failed, using %s: %v", b.primary.Name(), b.fallback.Name(), err)
	return b.fallback.ParseTask(ctx, text, now)
}

func (b fallbackBackend) ExtractTasks(ctx context.Context, transcript string, now time.Time) ([]model.ParsedTask, error) {
	tasks, err := b.primary.ExtractTasks(ctx, transcript, now)
	if err == nil {
		return tasks, nil
	}
	b.l.Warnf(ctx, "parser.fallbackBackend.ExtractTasks: %s backend failed, using %s: %v", b.primary.Name(), b.fallback.Name(), err)
	return b.fallback.ExtractTasks(ctx, transcript, now)
}
