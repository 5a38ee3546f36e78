package parser

import (
	"context"
	"time"

	"smart-task-manager/internal/model"
)

// Backend turns natural-language text into parsed tasks.
// now is the reference moment for relative date expressions.
type Backend interface {
	Name() string
	ParseTask(ctx context.Context, text string, now time.Time) (model.ParsedTask, error)
	ExtractTasks(ctx context.Context, transcript string, now time.Time) ([]model.ParsedTask, error)
}
