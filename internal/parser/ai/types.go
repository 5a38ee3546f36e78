package ai

import (
	"context"
	"time"

	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/llmprovider"
	"smart-task-manager/pkg/log"
)

// Generator produces LLM completions. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Backend parses tasks by prompting an LLM for JSON.
type Backend struct {
	llm   Generator
	dates *datemath.Parser
	l     log.Logger
}

// llmTask is the JSON object the model is asked to return per task.
type llmTask struct {
	Name        string `json:"name"`
	Assignee    string `json:"assignee"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
}

// Due date layouts accepted besides RFC3339, interpreted in the parser's timezone.
var localDueLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const dateOnlyLayout = time.DateOnly
