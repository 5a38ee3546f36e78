package datemath

import (
	"regexp"
	"time"
)

// Mode selects which date rules are active.
type Mode int

const (
	// ModeTask is used for single free-text task descriptions.
	ModeTask Mode = iota
	// ModeTranscript additionally enables "end of week" / "end of month".
	ModeTranscript
)

// Resolution is the outcome of resolving date/time expressions in a text.
type Resolution struct {
	At        time.Time // resolved moment, never before the reference time
	Remaining string    // input with the matched expressions removed
	DateToken string    // matched date expression, empty if none
	DateRule  string    // name of the date rule that matched
	TimeToken string    // matched time-of-day expression, empty if none
	TimeRule  string    // name of the time rule that matched
}

// dateValue is a date rule's contribution before the time of day is applied.
// correct moves a result forward when it ends up before the reference time.
type dateValue struct {
	at      time.Time
	correct func(time.Time) time.Time
}

type dateRule struct {
	name           string
	pattern        *regexp.Regexp
	transcriptOnly bool
	apply          func(m []string, base time.Time) (dateValue, bool)
}

type clock struct {
	hour   int
	minute int
}

type timeRule struct {
	name    string
	pattern *regexp.Regexp
	apply   func(m []string) (clock, bool)
}

// span is a half-open byte range [start, end) of a match.
type span struct {
	start int
	end   int
}
