package domain

import "context"

// ItineraryItem is one row of the Itinerary table.
// swagger:model ItineraryItem
type ItineraryItem struct {
	Day          string `json:"day"`
	Time         string `json:"time"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	DisplayOrder int    `json:"display_order"`
}

// WardrobeItem is one row of the Wardrobe table.
// swagger:model WardrobeItem
type WardrobeItem struct {
	Day          string `json:"day"`
	EventName    string `json:"event_name"`
	DressCode    string `json:"dress_code"`
	Colors       string `json:"colors"`
	Notes        string `json:"notes"`
	DisplayOrder int    `json:"display_order"`
}

// ItineraryRepository defines read access to the Itinerary and Wardrobe tables.
type ItineraryRepository interface {
	ListItinerary(ctx context.Context) ([]*ItineraryItem, error)
	ListWardrobe(ctx context.Context) ([]*WardrobeItem, error)
}
