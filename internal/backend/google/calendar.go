package google

import (
	"context"
	"fmt"
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"kiwi/internal/service"
)

// FindEvent looks the event up by its private key property.
func (c *Client) FindEvent(ctx context.Context, calendarID, key string) (service.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	resp, err := c.cal.Events.List(calendarID).
		PrivateExtendedProperty(service.EventKeyProperty + "=" + key).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return service.Event{}, wrapError(err)
	}
	if len(resp.Items) == 0 {
		return service.Event{}, fmt.Errorf("%w: event %s", service.ErrNotFound, key)
	}
	return fromAPIEvent(resp.Items[0]), nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, e service.Event) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	created, err := c.cal.Events.Insert(calendarID, toAPIEvent(e)).Context(ctx).Do()
	if err != nil {
		return wrapError(err)
	}
	c.logger.Printf("created event %s for %q", created.Id, e.Summary)
	return nil
}

// UpdateEvent patches summary, description and times.
func (c *Client) UpdateEvent(ctx context.Context, calendarID string, e service.Event) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.cal.Events.Patch(calendarID, e.ID, toAPIEvent(e)).Context(ctx).Do()
	return wrapError(err)
}

func toAPIEvent(e service.Event) *calendar.Event {
	return &calendar.Event{
		Summary:     e.Summary,
		Description: e.Description,
		Start:       &calendar.EventDateTime{DateTime: e.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: e.End.Format(time.RFC3339)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{service.EventKeyProperty: e.Key},
		},
	}
}

func fromAPIEvent(ev *calendar.Event) service.Event {
	out := service.Event{
		ID:          ev.Id,
		Summary:     ev.Summary,
		Description: ev.Description,
	}
	if ev.ExtendedProperties != nil {
		out.Key = ev.ExtendedProperties.Private[service.EventKeyProperty]
	}
	// All-day events carry Date instead of DateTime and keep zero times.
	if ev.Start != nil {
		out.Start, _ = time.Parse(time.RFC3339, ev.Start.DateTime)
	}
	if ev.End != nil {
		out.End, _ = time.Parse(time.RFC3339, ev.End.DateTime)
	}
	return out
}
