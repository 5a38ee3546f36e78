package gcalendar

import "time"

const (
	// DefaultCalendarID is used when a request names no calendar.
	DefaultCalendarID = "primary"
	// DefaultTokenPath is where calendar-auth stores the OAuth token.
	DefaultTokenPath = "token.json"

	// DefaultEventLength is how long before the deadline a task event starts.
	DefaultEventLength = 30 * time.Minute
	// DefaultReminder is the popup lead time before the event starts.
	DefaultReminder = 15 * time.Minute

	reminderMethodPopup = "popup"
)

// Event colour IDs from the Calendar colors palette.
const (
	ColorTomato    = "11"
	ColorTangerine = "6"
)

// TaskEvent mirrors a task deadline into a calendar. The event ends at Due.
type TaskEvent struct {
	CalendarID string
	Title      string
	Details    string
	Due        time.Time

	// Length is how long before Due the event starts. Zero means DefaultEventLength.
	Length time.Duration
	// Reminder is the popup lead time. Zero means DefaultReminder, negative keeps the calendar default.
	Reminder time.Duration
	// ColorID is an optional palette colour, e.g. ColorTomato.
	ColorID string
}

// Event is a created calendar event.
type Event struct {
	ID       string
	HtmlLink string
	Start    time.Time
	End      time.Time
}
