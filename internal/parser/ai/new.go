package ai

import (
	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/log"
)

// New creates an LLM-backed parser. dates supplies the timezone and
// end-of-day helpers used to normalize model output.
func New(llm Generator, dates *datemath.Parser, l log.Logger) *Backend {
	return &Backend{
		llm:   llm,
		dates: dates,
		l:     l,
	}
}
