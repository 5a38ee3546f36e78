package datemath

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Parser resolves date and time expressions found in free text to absolute
// moments in a fixed timezone. It holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Resolve finds the first matching date expression and the first matching
// time-of-day expression in text and combines them into one moment relative
// to now. The result is never before now. ok is false, and text is returned
// unchanged, when neither a date nor a time expression is present.
func (p *Parser) Resolve(text string, now time.Time, mode Mode) (Resolution, bool) {
	base := p.reference(now)

	dateMatch, dv, hasDate := matchDate(text, base, mode)
	timeMatch, tc, hasTime := matchTime(text)
	if !hasDate && !hasTime {
		return Resolution{Remaining: text}, false
	}

	res := Resolution{}
	at := base
	correct := addYear
	var spans []span

	if hasDate {
		at, correct = dv.at, dv.correct
		res.DateToken = text[dateMatch.start:dateMatch.end]
		res.DateRule = dateMatch.rule
		spans = append(spans, dateMatch.span)
	}

	if hasTime {
		at = time.Date(at.Year(), at.Month(), at.Day(), tc.hour, tc.minute, 0, 0, at.Location())
		res.TimeToken = text[timeMatch.start:timeMatch.end]
		res.TimeRule = timeMatch.rule
		spans = append(spans, timeMatch.span)
	}

	for at.Before(now) {
		at = correct(at)
	}

	res.At = at
	res.Remaining = removeSpans(text, spans)
	return res, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// reference converts now to the parser's timezone and rounds it up to a whole
// second, so that results keep second precision without falling before now.
func (p *Parser) reference(now time.Time) time.Time {
	base := now.In(p.location)
	if truncated := base.Truncate(time.Second); truncated.Before(base) {
		return truncated.Add(time.Second)
	}
	return base.Truncate(time.Second)
}

type ruleMatch struct {
	span
	rule string
}

// matchDate returns the first valid occurrence of the first rule that has one.
// An out-of-range occurrence ("31st February") does not hide a later valid one.
func matchDate(text string, base time.Time, mode Mode) (ruleMatch, dateValue, bool) {
	for _, r := range dateRules {
		if r.transcriptOnly && mode != ModeTranscript {
			continue
		}
		for _, idx := range r.pattern.FindAllStringSubmatchIndex(text, -1) {
			if v, ok := r.apply(submatches(text, idx), base); ok {
				return ruleMatch{span: span{start: idx[0], end: idx[1]}, rule: r.name}, v, true
			}
		}
	}
	return ruleMatch{}, dateValue{}, false
}

func matchTime(text string) (ruleMatch, clock, bool) {
	for _, r := range timeRules {
		for _, idx := range r.pattern.FindAllStringSubmatchIndex(text, -1) {
			if c, ok := r.apply(submatches(text, idx)); ok {
				return ruleMatch{span: span{start: idx[0], end: idx[1]}, rule: r.name}, c, true
			}
		}
	}
	return ruleMatch{}, clock{}, false
}

// submatches turns a FindStringSubmatchIndex result into strings, using ""
// for groups that did not participate.
func submatches(text string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		if idx[2*i] >= 0 {
			out[i] = text[idx[2*i]:idx[2*i+1]]
		}
	}
	return out
}

// removeSpans deletes the given byte ranges from text. Overlapping ranges are merged.
func removeSpans(text string, spans []span) string {
	if len(spans) == 0 {
		return text
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var sb strings.Builder
	pos := 0
	for _, s := range spans {
		if s.start > pos {
			sb.WriteString(text[pos:s.start])
		}
		if s.end > pos {
			pos = s.end
		}
	}
	sb.WriteString(text[pos:])
	return sb.String()
}
