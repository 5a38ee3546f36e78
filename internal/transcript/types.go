package transcript

import "regexp"

// AssignmentMatch is a person/action pair found in one sentence.
type AssignmentMatch struct {
	Assignee string // capitalized name as written
	Phrase   string // cleaned action phrase, used as the task name
	Sentence string // the sentence the match came from
	Rule     string // name of the rule that matched
}

// assignmentRule captures the assignee in group 1 and the raw action in group 2.
type assignmentRule struct {
	name    string
	pattern *regexp.Regexp
}
