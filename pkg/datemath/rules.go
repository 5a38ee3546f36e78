package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRules are evaluated top to bottom; the first rule that matches wins,
// even when a later rule would match a more specific expression.
var dateRules = []dateRule{
	{
		name:    RuleDayMonth,
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthPattern + `)\b`),
		apply: func(m []string, base time.Time) (dateValue, bool) {
			return absoluteDayMonth(m[2], m[1], base)
		},
	},
	{
		name:    RuleMonthDay,
		pattern: regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`),
		apply: func(m []string, base time.Time) (dateValue, bool) {
			return absoluteDayMonth(m[1], m[2], base)
		},
	},
	{
		name:    RuleISODate,
		pattern: regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`),
		apply:   applyISODate,
	},
	{
		name:    RuleDayWord,
		pattern: regexp.MustCompile(`(?i)\b(today|tomorrow|tonight)\b`),
		apply:   applyDayWord,
	},
	{
		name:    RuleNext,
		pattern: regexp.MustCompile(`(?i)\bnext\s+(week|month|` + weekdayPattern + `)\b`),
		apply:   applyNext,
	},
	{
		name:    RuleInDuration,
		pattern: regexp.MustCompile(`(?i)\bin\s+(\d+)\s+(days?|weeks?|months?)\b`),
		apply:   applyInDuration,
	},
	{
		name:    RuleWeekday,
		pattern: regexp.MustCompile(`(?i)\b(` + weekdayPattern + `)\b`),
		apply: func(m []string, base time.Time) (dateValue, bool) {
			wd, ok := weekdays[strings.ToLower(m[1])]
			if !ok {
				return dateValue{}, false
			}
			return dateValue{at: nextWeekday(base, wd), correct: addWeek}, true
		},
	},
	{
		name:           RuleEndOf,
		pattern:        regexp.MustCompile(`(?i)\bend\s+of\s+(?:the\s+)?(week|month)\b`),
		transcriptOnly: true,
		apply:          applyEndOf,
	},
}

// timeRules are evaluated top to bottom like dateRules.
var timeRules = []timeRule{
	{
		name:    RuleMeridiem,
		pattern: regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`),
		apply: func(m []string) (clock, bool) {
			hour, err := strconv.Atoi(m[1])
			if err != nil || hour < 1 || hour > 12 {
				return clock{}, false
			}
			minute, ok := parseMinute(m[2])
			if !ok {
				return clock{}, false
			}
			switch strings.ToLower(m[3]) {
			case "pm":
				if hour != 12 {
					hour += 12
				}
			case "am":
				if hour == 12 {
					hour = 0
				}
			}
			return clock{hour: hour, minute: minute}, true
		},
	},
	{
		name:    RuleClock24,
		pattern: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`),
		apply: func(m []string) (clock, bool) {
			hour, err := strconv.Atoi(m[1])
			if err != nil || hour > 23 {
				return clock{}, false
			}
			minute, ok := parseMinute(m[2])
			if !ok {
				return clock{}, false
			}
			return clock{hour: hour, minute: minute}, true
		},
	},
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// months is keyed by the first three letters of the month name.
var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

func parseMinute(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	minute, err := strconv.Atoi(s)
	if err != nil || minute > 59 {
		return 0, false
	}
	return minute, true
}

func addWeek(t time.Time) time.Time { return t.AddDate(0, 0, daysInWeek) }

func addYear(t time.Time) time.Time { return t.AddDate(1, 0, 0) }

// addMonthEnd moves a month-end moment to the last day of the following month.
func addMonthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+2, 0, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

// nextWeekday returns the next strict occurrence of wd after base's day.
// When base already falls on wd, the result is a full week later.
func nextWeekday(base time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(base.Weekday()) + daysInWeek) % daysInWeek
	if days == 0 {
		days = daysInWeek
	}
	return base.AddDate(0, 0, days)
}

// onDay returns the given calendar day at base's clock, and whether that day exists.
func onDay(year int, month time.Month, day int, base time.Time) (time.Time, bool) {
	t := time.Date(year, month, day, base.Hour(), base.Minute(), base.Second(), 0, base.Location())
	return t, t.Year() == year && t.Month() == month && t.Day() == day
}

// absoluteDayMonth places a day+month in the current year, rolling forward a
// year at a time while it is still in the past or does not exist (29 February).
func absoluteDayMonth(monthName, dayStr string, base time.Time) (dateValue, bool) {
	month, ok := months[strings.ToLower(monthName)[:3]]
	if !ok {
		return dateValue{}, false
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return dateValue{}, false
	}

	for year := base.Year(); year <= base.Year()+maxLeapSearch; year++ {
		t, exists := onDay(year, month, day, base)
		if !exists || t.Before(base) {
			continue
		}
		return dateValue{at: t, correct: addYear}, true
	}
	return dateValue{}, false
}

func applyISODate(m []string, base time.Time) (dateValue, bool) {
	year, errY := strconv.Atoi(m[1])
	month, errM := strconv.Atoi(m[2])
	day, errD := strconv.Atoi(m[3])
	if errY != nil || errM != nil || errD != nil || month < 1 || month > 12 {
		return dateValue{}, false
	}
	t, exists := onDay(year, time.Month(month), day, base)
	if !exists {
		return dateValue{}, false
	}
	return dateValue{at: t, correct: addYear}, true
}

func applyDayWord(m []string, base time.Time) (dateValue, bool) {
	switch strings.ToLower(m[1]) {
	case "today":
		return dateValue{at: base, correct: addYear}, true
	case "tomorrow":
		return dateValue{at: base.AddDate(0, 0, 1), correct: addYear}, true
	case "tonight":
		t := time.Date(base.Year(), base.Month(), base.Day(), tonightHour, 0, 0, 0, base.Location())
		return dateValue{at: t, correct: addYear}, true
	}
	return dateValue{}, false
}

func applyNext(m []string, base time.Time) (dateValue, bool) {
	unit := strings.ToLower(m[1])
	if wd, ok := weekdays[unit]; ok {
		return dateValue{at: nextWeekday(base, wd), correct: addWeek}, true
	}
	// "next week" and any other unqualified "next <x>" move one week ahead.
	return dateValue{at: base.AddDate(0, 0, daysInWeek), correct: addYear}, true
}

func applyInDuration(m []string, base time.Time) (dateValue, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n > maxDurationAmount {
		return dateValue{}, false
	}
	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "day"):
		return dateValue{at: base.AddDate(0, 0, n), correct: addYear}, true
	case strings.HasPrefix(unit, "week"):
		return dateValue{at: base.AddDate(0, 0, n*daysInWeek), correct: addYear}, true
	case strings.HasPrefix(unit, "month"):
		return dateValue{at: base.AddDate(0, n, 0), correct: addYear}, true
	}
	return dateValue{}, false
}

func applyEndOf(m []string, base time.Time) (dateValue, bool) {
	loc := base.Location()
	switch strings.ToLower(m[1]) {
	case "week":
		days := (int(time.Friday) - int(base.Weekday()) + daysInWeek) % daysInWeek
		friday := base.AddDate(0, 0, days)
		t := time.Date(friday.Year(), friday.Month(), friday.Day(), endOfDayHour, 0, 0, 0, loc)
		return dateValue{at: t, correct: addWeek}, true
	case "month":
		t := time.Date(base.Year(), base.Month()+1, 0, endOfDayHour, 0, 0, 0, loc)
		return dateValue{at: t, correct: addMonthEnd}, true
	}
	return dateValue{}, false
}
