package domain

import "context"

// DefaultDisplayOrder is used when an event has no numeric display_order.
const DefaultDisplayOrder = 999

// Event is one celebration event a family may be invited to.
// swagger:model Event
type Event struct {
	ID           string `json:"event_id"`
	Name         string `json:"event_name"`
	Date         string `json:"event_date"`
	Timing       string `json:"event_timing"`
	Venue        string `json:"venue"`
	Wardrobe     string `json:"wardrobe"`
	Day          string `json:"day,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// EventRepository defines read access to the Events table.
type EventRepository interface {
	// List returns all events sorted by display order, ties in sheet order.
	List(ctx context.Context) ([]*Event, error)
	// ListForFamily returns the events the family is invited to; empty for an unknown family.
	ListForFamily(ctx context.Context, familyID string) ([]*Event, error)
}

// InvitedDays returns the distinct non-empty days of events in the order first seen.
func InvitedDays(events []*Event) []string {
	seen := make(map[string]struct{})
	days := []string{}
	for _, ev := range events {
		if ev.Day == "" {
			continue
		}
		if _, ok := seen[ev.Day]; ok {
			continue
		}
		seen[ev.Day] = struct{}{}
		days = append(days, ev.Day)
	}
	return days
}
