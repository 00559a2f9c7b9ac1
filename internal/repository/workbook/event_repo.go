package workbook

import (
	"context"
	"fmt"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

type eventRepository struct {
	store    domain.TableStore
	families domain.FamilyRepository
}

// NewEventRepository returns a domain.EventRepository backed by the Events sheet. families
// resolves invitations for ListForFamily.
func NewEventRepository(store domain.TableStore, families domain.FamilyRepository) domain.EventRepository {
	return &eventRepository{store: store, families: families}
}

func eventFromRecord(rec tabular.Record) *domain.Event {
	return &domain.Event{
		ID:           rec[colEventID],
		Name:         rec[colEventName],
		Date:         rec["event_date"],
		Timing:       rec.Get("event_timing", "event_time"),
		Venue:        rec.Get("venue", "event_location"),
		Wardrobe:     rec["wardrobe"],
		Day:          rec[colDay],
		DisplayOrder: parseDisplayOrder(rec[colDisplayOrder]),
	}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	table, err := r.store.Read(ctx, domain.TableEvents, "")
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	records := tabular.MapRows(table)
	events := make([]*domain.Event, 0, len(records))
	for _, rec := range records {
		events = append(events, eventFromRecord(rec))
	}
	sortByDisplayOrder(events, func(e *domain.Event) int { return e.DisplayOrder })
	return events, nil
}

func (r *eventRepository) ListForFamily(ctx context.Context, familyID string) ([]*domain.Event, error) {
	family, ok, err := r.families.GetByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	if !ok {
		return []*domain.Event{}, nil
	}

	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	invited := make(map[string]struct{}, len(family.EventsInvited))
	for _, id := range family.EventsInvited {
		invited[id] = struct{}{}
	}
	events := []*domain.Event{}
	for _, ev := range all {
		if _, ok := invited[ev.ID]; ok {
			events = append(events, ev)
		}
	}
	return events, nil
}
