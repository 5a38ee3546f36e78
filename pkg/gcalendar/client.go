package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrNoDeadline is returned for a TaskEvent without a due time.
var ErrNoDeadline = errors.New("gcalendar: task event has no due time")

// Client creates task events through the Google Calendar API.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile reads Service Account or OAuth Desktop App
// credentials from credentialsPath. OAuth credentials also need the token
// written by calendar-auth at tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON is NewClientFromCredentialsFile for raw credentials.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	ts, err := tokenSource(ctx, credentialsJSON, tokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Client over a pre-authorized HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// tokenSource prefers Service Account credentials and falls back to an OAuth
// Desktop App config plus a stored token.
func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return jwt.TokenSource(ctx), nil
	}

	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	data, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: OAuth credentials need a token at %s, run calendar-auth: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token %s: %w", tokenPath, err)
	}
	return cfg.TokenSource(ctx, &tok), nil
}

// CreateTaskEvent inserts the event for a task deadline.
func (c *Client) CreateTaskEvent(ctx context.Context, ev TaskEvent) (*Event, error) {
	if ev.Due.IsZero() {
		return nil, ErrNoDeadline
	}

	calendarID := ev.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	body, start := buildEvent(ev)
	created, err := c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		HtmlLink: created.HtmlLink,
		Start:    start,
		End:      ev.Due,
	}, nil
}

// buildEvent lays the event out so that it ends at the deadline, in the
// deadline's own timezone.
func buildEvent(ev TaskEvent) (*calendar.Event, time.Time) {
	length := ev.Length
	if length <= 0 {
		length = DefaultEventLength
	}
	start := ev.Due.Add(-length)

	tz := ev.Due.Location().String()
	if tz == "Local" {
		tz = ""
	}

	body := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Details,
		ColorId:     ev.ColorID,
		Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: tz},
		End:         &calendar.EventDateTime{DateTime: ev.Due.Format(time.RFC3339), TimeZone: tz},
	}

	reminder := ev.Reminder
	if reminder == 0 {
		reminder = DefaultReminder
	}
	if reminder > 0 {
		body.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: reminderMethodPopup, Minutes: int64(reminder / time.Minute)}},
			ForceSendFields: []string{"UseDefault"},
		}
	}
	return body, start
}
