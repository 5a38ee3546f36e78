package extract

import (
	"regexp"
	"strings"

	"smart-task-manager/internal/model"
)

var priorityPattern = regexp.MustCompile(`(?i)\bP[1-4]\b`)

// ExtractPriority finds the first whole-word P1..P4 tag (any case), removes
// that occurrence from text and returns it upper-cased. Without a tag it
// returns model.DefaultPriority and text unchanged.
func ExtractPriority(text string) (model.Priority, string) {
	loc := priorityPattern.FindStringIndex(text)
	if loc == nil {
		return model.DefaultPriority, text
	}
	p := model.Priority(strings.ToUpper(text[loc[0]:loc[1]]))
	return p, text[:loc[0]] + text[loc[1]:]
}
