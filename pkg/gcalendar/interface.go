package gcalendar

import "context"

// Calendar mirrors task deadlines into Google Calendar. *Client implements it.
type Calendar interface {
	CreateTaskEvent(ctx context.Context, ev TaskEvent) (*Event, error)
}

var _ Calendar = (*Client)(nil)
