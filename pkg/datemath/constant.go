package datemath

// Date rule names, in evaluation order.
const (
	RuleDayMonth   = "day_month"
	RuleMonthDay   = "month_day"
	RuleISODate    = "iso_date"
	RuleDayWord    = "day_word"
	RuleNext       = "next"
	RuleInDuration = "in_duration"
	RuleWeekday    = "weekday"
	RuleEndOf      = "end_of"
)

// Time rule names, in evaluation order.
const (
	RuleMeridiem = "meridiem"
	RuleClock24  = "clock_24h"
)

const (
	monthPattern   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	weekdayPattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

	tonightHour   = 20
	endOfDayHour  = 17
	daysInWeek    = 7
	maxLeapSearch = 8
	// maxDurationAmount bounds N in "in N days|weeks|months"; larger amounts do not match.
	maxDurationAmount = 10000
)
