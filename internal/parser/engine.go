package parser

import (
	"regexp"
	"strings"
	"time"

	"smart-task-manager/internal/extract"
	"smart-task-manager/internal/model"
	"smart-task-manager/internal/transcript"
	"smart-task-manager/pkg/datemath"
)

var (
	fillerBy      = regexp.MustCompile(`(?i)\bby\b`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Engine is the deterministic rule-based parser. It never fails: fields that
// cannot be found fall back to their documented defaults.
type Engine struct {
	dates   *datemath.Parser
	matcher *transcript.Matcher
}

// New creates an Engine resolving dates with the given parser.
func New(dates *datemath.Parser) *Engine {
	return &Engine{
		dates:   dates,
		matcher: transcript.NewMatcher(),
	}
}

// ParseTask parses a single free-text task description. Priority, due moment
// and assignee are extracted in that order, each step consuming the text it
// matched; what remains becomes the task name.
func (e *Engine) ParseTask(text string, now time.Time) model.ParsedTask {
	priority, rest := extract.ExtractPriority(text)

	var dueAt *time.Time
	if res, ok := e.dates.Resolve(rest, now, datemath.ModeTask); ok {
		at := res.At
		dueAt = &at
		rest = res.Remaining
	}

	assignee, rest := extract.ExtractAssignee(rest)

	return model.ParsedTask{
		Name:     taskName(rest),
		Assignee: assignee,
		DueAt:    dueAt,
		Priority: priority,
	}
}

// ExtractTasks returns one task per transcript sentence that contains an
// assignment phrase, in transcript order. Due moment and priority come from
// the whole sentence. The result is empty, never nil, when nothing matches.
func (e *Engine) ExtractTasks(transcriptText string, now time.Time) []model.ParsedTask {
	tasks := make([]model.ParsedTask, 0)
	for sentence := range transcript.Sentences(transcriptText) {
		m, ok := e.matcher.Match(sentence)
		if !ok {
			continue
		}

		priority, _ := extract.ExtractPriority(sentence)
		task := model.ParsedTask{
			Name:     m.Phrase,
			Assignee: m.Assignee,
			Priority: priority,
		}
		if res, ok := e.dates.Resolve(sentence, now, datemath.ModeTranscript); ok {
			at := res.At
			task.DueAt = &at
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// taskName drops "by" filler words left behind by date removal and
// normalizes spacing.
func taskName(rest string) string {
	name := fillerBy.ReplaceAllString(rest, " ")
	name = strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " "))
	if name == "" {
		return model.DefaultTaskName
	}
	return name
}
