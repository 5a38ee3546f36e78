package checklist

import (
	"regexp"
	"strings"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state and text: "  - [x] Task" → "  ", "x", "Task".
	CheckboxPattern = `^(\s*)- \[([ xX])\] (.+)$`

	codeFence = "```"
)

// Service reads and edits subtask checklists stored in task descriptions.
// Checkboxes inside fenced code blocks are ignored.
type Service interface {
	// Parse extracts every checkbox from markdown content.
	Parse(content string) []Item
	// Stats calculates checklist progress.
	Stats(content string) Stats
	// Render formats items as unchecked checkboxes, one per line. Blank items are skipped.
	Render(items []string) string
	// SetItem sets the state of every checkbox whose text contains text
	// (case-insensitive) and reports how many matched.
	SetItem(content, text string, checked bool) (string, int)
	// SetAll sets every checkbox to the given state.
	SetAll(content string, checked bool) string
	// IsComplete reports whether content has checkboxes and all are checked.
	IsComplete(content string) bool
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// eachCheckbox calls fn for every checkbox line outside code fences.
// fn may return a replacement for the line.
func (s *service) eachCheckbox(content string, fn func(lineNo int, m []string) (string, bool)) string {
	lines := strings.Split(content, "\n")
	inFence := false
	changed := false

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), codeFence) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := s.pattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		if repl, ok := fn(i, m); ok {
			lines[i] = repl
			changed = true
		}
	}

	if !changed {
		return content
	}
	return strings.Join(lines, "\n")
}

func (s *service) Parse(content string) []Item {
	items := make([]Item, 0)
	s.eachCheckbox(content, func(lineNo int, m []string) (string, bool) {
		items = append(items, Item{
			Line:    lineNo,
			Indent:  m[1],
			Checked: strings.EqualFold(m[2], "x"),
			Text:    strings.TrimSpace(m[3]),
		})
		return "", false
	})
	return items
}

func (s *service) Stats(content string) Stats {
	items := s.Parse(content)
	if len(items) == 0 {
		return Stats{}
	}

	completed := 0
	for _, it := range items {
		if it.Checked {
			completed++
		}
	}

	return Stats{
		Total:     len(items),
		Completed: completed,
		Pending:   len(items) - completed,
		Progress:  float64(completed) / float64(len(items)) * 100,
	}
}

func (s *service) Render(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			lines = append(lines, CheckboxUnchecked+" "+it)
		}
	}
	return strings.Join(lines, "\n")
}

func (s *service) SetItem(content, text string, checked bool) (string, int) {
	search := strings.ToLower(strings.TrimSpace(text))
	if search == "" {
		return content, 0
	}

	count := 0
	out := s.eachCheckbox(content, func(_ int, m []string) (string, bool) {
		if !strings.Contains(strings.ToLower(m[3]), search) {
			return "", false
		}
		count++
		return checkbox(m[1], m[3], checked), true
	})
	return out, count
}

func (s *service) SetAll(content string, checked bool) string {
	return s.eachCheckbox(content, func(_ int, m []string) (string, bool) {
		return checkbox(m[1], m[3], checked), true
	})
}

func (s *service) IsComplete(content string) bool {
	st := s.Stats(content)
	return st.Total > 0 && st.Completed == st.Total
}

func checkbox(indent, text string, checked bool) string {
	if checked {
		return indent + CheckboxChecked + " " + text
	}
	return indent + CheckboxUnchecked + " " + text
}
