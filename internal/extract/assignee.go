package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"smart-task-manager/internal/model"
)

// nonNames are capitalized words that commonly start a task description and
// must not be taken for a person: prepositions and task verbs.
var nonNames = map[string]struct{}{
	"by": {}, "for": {}, "with": {}, "to": {}, "from": {}, "at": {}, "on": {}, "in": {},
	"finish": {}, "complete": {}, "call": {}, "email": {}, "send": {}, "review": {}, "update": {}, "create": {},
}

// ExtractAssignee returns the first capitalized word of text that is longer
// than one character and not a preposition or task verb, and text with every
// occurrence of that word removed. Without a candidate it returns
// model.DefaultAssignee and text unchanged.
func ExtractAssignee(text string) (string, string) {
	tokens := strings.Fields(text)

	name := ""
	for _, tok := range tokens {
		if candidate := trimPunct(tok); isNameCandidate(candidate) {
			name = candidate
			break
		}
	}
	if name == "" {
		return model.DefaultAssignee, text
	}

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if trimPunct(tok) == name {
			continue
		}
		kept = append(kept, tok)
	}
	return name, strings.Join(kept, " ")
}

func isNameCandidate(word string) bool {
	if utf8.RuneCountInString(word) <= 1 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	if !unicode.IsUpper(first) {
		return false
	}
	_, stop := nonNames[strings.ToLower(word)]
	return !stop
}

func trimPunct(s string) string {
	return strings.TrimFunc(s, unicode.IsPunct)
}
