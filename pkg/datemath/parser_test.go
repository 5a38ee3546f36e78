package datemath_test

import (
	"strings"
	"testing"
	"time"

	"smart-task-manager/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC) // Monday

	tests := []struct {
		name     string
		text     string
		mode     datemath.Mode
		want     time.Time
		dateRule string
		timeRule string
	}{
		{
			name:     "Day month with meridiem time",
			text:     "Finish landing page Aman by 11pm 20th June",
			want:     time.Date(2024, 6, 20, 23, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayMonth,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Tomorrow morning",
			text:     "Call client tomorrow 9am P1",
			want:     time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Same weekday resolves to the following week",
			text:     "Monday",
			want:     time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleWeekday,
		},
		{
			name:     "Bare weekday later this week",
			text:     "review on thursday",
			want:     time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleWeekday,
		},
		{
			name:     "Next weekday",
			text:     "demo next Friday",
			want:     time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleNext,
		},
		{
			name:     "Next week",
			text:     "ship next week",
			want:     time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleNext,
		},
		{
			name:     "Next month moves one week",
			text:     "plan next month",
			want:     time.Date(2024, 6, 17, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleNext,
		},
		{
			name:     "In 3 days",
			text:     "in 3 days",
			want:     time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleInDuration,
		},
		{
			name:     "In 2 weeks",
			text:     "in 2 weeks",
			want:     time.Date(2024, 6, 24, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleInDuration,
		},
		{
			name:     "In 1 month",
			text:     "in 1 month",
			want:     time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleInDuration,
		},
		{
			name:     "Today later",
			text:     "today 5pm",
			want:     time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Today earlier rolls a year",
			text:     "today 8am",
			want:     time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Tonight defaults to 8pm",
			text:     "tonight",
			want:     time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
		},
		{
			name:     "Tonight with explicit time",
			text:     "tonight 11:30pm",
			want:     time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Twelve am is midnight",
			text:     "tomorrow 12am",
			want:     time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayWord,
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "ISO date in the future",
			text:     "2024-07-01",
			want:     time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleISODate,
		},
		{
			name:     "ISO date in the past rolls a year",
			text:     "2024-06-01 14:00",
			want:     time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleISODate,
			timeRule: datemath.RuleClock24,
		},
		{
			name:     "Month day in the past rolls a year",
			text:     "June 5",
			want:     time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleMonthDay,
		},
		{
			name:     "Abbreviated month",
			text:     "Aug 3rd",
			want:     time.Date(2024, 8, 3, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleMonthDay,
		},
		{
			name:     "24 hour clock only",
			text:     "sync at 17:30",
			want:     time.Date(2024, 6, 10, 17, 30, 0, 0, time.UTC),
			timeRule: datemath.RuleClock24,
		},
		{
			name:     "24 hour clock already passed",
			text:     "standup 08:15",
			want:     time.Date(2025, 6, 10, 8, 15, 0, 0, time.UTC),
			timeRule: datemath.RuleClock24,
		},
		{
			name:     "End of week in transcript mode",
			text:     "wrap up by end of week",
			mode:     datemath.ModeTranscript,
			want:     time.Date(2024, 6, 14, 17, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleEndOf,
		},
		{
			name:     "End of month in transcript mode",
			text:     "budget by end of the month",
			mode:     datemath.ModeTranscript,
			want:     time.Date(2024, 6, 30, 17, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleEndOf,
		},
		{
			name:     "Out of range meridiem does not hide a later one",
			text:     "not 13pm but 3pm",
			want:     time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
			timeRule: datemath.RuleMeridiem,
		},
		{
			name:     "Impossible day before a valid one",
			text:     "31st February or rather 5th July",
			want:     time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayMonth,
		},
		{
			name:     "Huge duration falls through to the weekday",
			text:     "in 1317624576693539402 weeks, say Friday",
			want:     time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleWeekday,
		},
		{
			name:     "Explicit date beats weekday because it is listed first",
			text:     "Monday or 20th June",
			want:     time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC),
			dateRule: datemath.RuleDayMonth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Resolve(tt.text, now, tt.mode)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", tt.text)
			}
			if !got.At.Equal(tt.want) {
				t.Errorf("Resolve(%q) At = %v, want %v", tt.text, got.At, tt.want)
			}
			if got.DateRule != tt.dateRule {
				t.Errorf("Resolve(%q) DateRule = %q, want %q", tt.text, got.DateRule, tt.dateRule)
			}
			if got.TimeRule != tt.timeRule {
				t.Errorf("Resolve(%q) TimeRule = %q, want %q", tt.text, got.TimeRule, tt.timeRule)
			}
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		mode datemath.Mode
	}{
		{name: "Plain text", text: "Write the quarterly report"},
		{name: "End of week outside transcript mode", text: "by end of week", mode: datemath.ModeTask},
		{name: "Impossible calendar day", text: "31st February"},
		{name: "Hour out of range", text: "at 25:00"},
		{name: "Meridiem hour out of range", text: "at 13pm"},
		{name: "Word containing am", text: "10 amazing ideas"},
		{name: "Duration beyond bound", text: "in 9223372036854775807 days"},
		{name: "Duration overflowing int", text: "in 99999999999999999999 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Resolve(tt.text, now, tt.mode)
			if ok {
				t.Fatalf("Resolve(%q) unexpectedly matched: %+v", tt.text, got)
			}
			if got.Remaining != tt.text {
				t.Errorf("Resolve(%q) Remaining = %q, want input unchanged", tt.text, got.Remaining)
			}
		})
	}
}

func TestResolve_RemovesMatchedTokens(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	got, ok := parser.Resolve("Finish landing page Aman by 11pm 20th June", now, datemath.ModeTask)
	if !ok {
		t.Fatalf("expected a match")
	}
	if got.DateToken != "20th June" {
		t.Errorf("DateToken = %q", got.DateToken)
	}
	if got.TimeToken != "11pm" {
		t.Errorf("TimeToken = %q", got.TimeToken)
	}
	if remaining := strings.Join(strings.Fields(got.Remaining), " "); remaining != "Finish landing page Aman by" {
		t.Errorf("Remaining = %q", remaining)
	}
}

func TestResolve_EndOfWeekOnFridayEvening(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC) // Friday after 17:00

	got, ok := parser.Resolve("end of week", now, datemath.ModeTranscript)
	if !ok {
		t.Fatalf("expected a match")
	}
	want := time.Date(2024, 6, 21, 17, 0, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestResolve_LeapDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	got, ok := parser.Resolve("29th Feb", now, datemath.ModeTask)
	if !ok {
		t.Fatalf("expected a match")
	}
	want := time.Date(2028, 2, 29, 10, 0, 0, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestResolve_Timezone(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	loc := parser.Location()
	now := time.Date(2024, 6, 10, 20, 0, 0, 0, time.UTC) // 03:00 on the 11th in UTC+7

	got, ok := parser.Resolve("tomorrow 9am", now, datemath.ModeTask)
	if !ok {
		t.Fatalf("expected a match")
	}
	want := time.Date(2024, 6, 12, 9, 0, 0, 0, loc)
	if !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestResolve_NeverBeforeNow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	inputs := []string{
		"today", "today 12am", "tonight 6am", "monday 1am", "sunday", "next sunday 3am",
		"1st Jan", "Dec 31 11:59pm", "2020-01-01", "00:00", "in 0 days", "next week 1am",
	}
	nows := []time.Time{
		time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 23, 59, 59, 500, time.UTC),
		time.Date(2024, 2, 29, 12, 30, 15, 0, time.UTC),
		time.Date(2024, 6, 16, 23, 0, 0, 0, time.UTC),
	}

	for _, now := range nows {
		for _, text := range inputs {
			got, ok := parser.Resolve(text, now, datemath.ModeTranscript)
			if !ok {
				t.Fatalf("Resolve(%q) found nothing", text)
			}
			if got.At.Before(now) {
				t.Errorf("Resolve(%q, %v) = %v is before now", text, now, got.At)
			}
			if got.At.Nanosecond() != 0 {
				t.Errorf("Resolve(%q, %v) = %v has sub-second precision", text, now, got.At)
			}
		}
	}
}

func TestResolve_SubSecondNow(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 500_000_000, time.UTC)

	got, ok := parser.Resolve("today", now, datemath.ModeTask)
	if !ok {
		t.Fatalf("expected a match")
	}
	want := time.Date(2024, 6, 10, 9, 0, 1, 0, time.UTC)
	if !got.At.Equal(want) {
		t.Errorf("At = %v, want %v", got.At, want)
	}
}

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}

	start := parser.StartOfDay(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))
	if !start.Equal(base) {
		t.Errorf("StartOfDay() got = %v, want %v", start, base)
	}
}
