package workbook

import (
	"context"
	"fmt"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

type itineraryRepository struct {
	store domain.TableStore
}

// NewItineraryRepository returns a domain.ItineraryRepository backed by the Itinerary and
// Wardrobe sheets.
func NewItineraryRepository(store domain.TableStore) domain.ItineraryRepository {
	return &itineraryRepository{store: store}
}

func (r *itineraryRepository) ListItinerary(ctx context.Context) ([]*domain.ItineraryItem, error) {
	table, err := r.store.Read(ctx, domain.TableItinerary, "")
	if err != nil {
		return nil, fmt.Errorf("read itinerary: %w", err)
	}
	items := []*domain.ItineraryItem{}
	for _, rec := range tabular.MapRows(table) {
		if rec["title"] == "" {
			continue
		}
		items = append(items, &domain.ItineraryItem{
			Day:          rec[colDay],
			Time:         rec["time"],
			Title:        rec["title"],
			Description:  rec["description"],
			Type:         rec["type"],
			DisplayOrder: parseDisplayOrder(rec[colDisplayOrder]),
		})
	}
	sortByDisplayOrder(items, func(it *domain.ItineraryItem) int { return it.DisplayOrder })
	return items, nil
}

func (r *itineraryRepository) ListWardrobe(ctx context.Context) ([]*domain.WardrobeItem, error) {
	table, err := r.store.Read(ctx, domain.TableWardrobe, "")
	if err != nil {
		return nil, fmt.Errorf("read wardrobe: %w", err)
	}
	items := []*domain.WardrobeItem{}
	for _, rec := range tabular.MapRows(table) {
		if rec[colEventName] == "" {
			continue
		}
		items = append(items, &domain.WardrobeItem{
			Day:          rec[colDay],
			EventName:    rec[colEventName],
			DressCode:    rec["dress_code"],
			Colors:       rec["colors"],
			Notes:        rec["notes"],
			DisplayOrder: parseDisplayOrder(rec[colDisplayOrder]),
		})
	}
	sortByDisplayOrder(items, func(it *domain.WardrobeItem) int { return it.DisplayOrder })
	return items, nil
}
