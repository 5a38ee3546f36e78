package transcript

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule names, in evaluation order.
const (
	RuleYou        = "name_you"
	RuleTakeCareOf = "name_take_care_of"
	RulePlease     = "name_please"
	RuleHandle     = "name_handle"
	RuleAskTo      = "ask_name_to"
	RuleCanYou     = "name_can_you"
	RuleLetsHave   = "lets_have_name"
)

// MinPhraseLength is the shortest cleaned action phrase accepted as a task name.
const MinPhraseLength = 3

const (
	namePattern     = `([A-Z][a-z]+)`
	actionPattern   = `((?s:.*?))`
	deadlinePattern = `(?i:\s+by\s+|\s+before\s+|$)`
)

var (
	leadingArticle   = regexp.MustCompile(`(?i)^(?:the|a|an)\s+`)
	trailingDeadline = regexp.MustCompile(`(?i)\s+(?:by|before|until)\s+.*$`)
	trailingPriority = regexp.MustCompile(`(?i)\s+P[1-4]\s*$`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

func newRule(name, prefix, infix string) assignmentRule {
	return assignmentRule{
		name:    name,
		pattern: regexp.MustCompile(prefix + namePattern + infix + actionPattern + deadlinePattern),
	}
}

// defaultRules is the fixed assignment-phrase list. Keywords match in any case;
// the assignee must start with an upper-case letter.
var defaultRules = []assignmentRule{
	newRule(RuleYou, `\b`, `\s+(?i:you)\s+`),
	newRule(RuleTakeCareOf, `\b`, `\s+(?i:take\s+care\s+of)\s+`),
	newRule(RulePlease, `\b`, `\s+(?i:please)\s+`),
	newRule(RuleHandle, `\b`, `\s+(?i:handle)\s+`),
	newRule(RuleAskTo, `(?i:\bask)\s+`, `\s+(?i:to)\s+`),
	newRule(RuleCanYou, `\b`, `,?\s+(?i:can\s+you)\s+`),
	newRule(RuleLetsHave, `(?i:\blet'?s\s+have)\s+`, `\s+(?:(?i:do|handle|take\s+care\s+of)\s+)?`),
}

// Matcher finds task assignments in single sentences. It is stateless and
// safe for concurrent use.
type Matcher struct {
	rules []assignmentRule
}

// NewMatcher returns a Matcher with the built-in rule list.
func NewMatcher() *Matcher {
	return &Matcher{rules: defaultRules}
}

// RuleNames lists the rules in the order they are tried.
func (m *Matcher) RuleNames() []string {
	names := make([]string, len(m.rules))
	for i, r := range m.rules {
		names[i] = r.name
	}
	return names
}

// Match tries each rule in order and returns the first one whose cleaned action
// phrase is at least MinPhraseLength characters long. No scoring is applied:
// an earlier rule wins over a later, possibly better, one.
func (m *Matcher) Match(sentence string) (AssignmentMatch, bool) {
	for _, r := range m.rules {
		sub := r.pattern.FindStringSubmatch(sentence)
		if sub == nil {
			continue
		}
		phrase := CleanPhrase(sub[2])
		if utf8.RuneCountInString(phrase) < MinPhraseLength {
			continue
		}
		return AssignmentMatch{
			Assignee: sub[1],
			Phrase:   phrase,
			Sentence: sentence,
			Rule:     r.name,
		}, true
	}
	return AssignmentMatch{}, false
}

// CleanPhrase strips a leading article, a trailing deadline clause and a
// trailing priority tag from a raw action phrase and normalizes spacing.
func CleanPhrase(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingArticle.ReplaceAllString(s, "")
	s = trailingDeadline.ReplaceAllString(s, "")
	s = trailingPriority.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
