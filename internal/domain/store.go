package domain

import "context"

// Table names in the workbook.
const (
	TableFamilies    = "Families"
	TableEvents      = "Events"
	TableConfig      = "Config"
	TableResponses   = "Responses"
	TableItinerary   = "Itinerary"
	TableWardrobe    = "Wardrobe"
	TableInviteLinks = "Invite links"
)

// DefaultReadRange is read when the caller passes an empty range.
const DefaultReadRange = "A1:Z1000"

// TableStore is the tabular persistence port: named tables addressed with A1 ranges.
// Transport and credential failures wrap ErrStoreUnavailable.
type TableStore interface {
	// Read returns the rows of table within rangeSpec; a table without data yields no rows and no error.
	Read(ctx context.Context, table, rangeSpec string) ([][]string, error)
	// Append adds row after the last row of table. Retried calls duplicate rows.
	Append(ctx context.Context, table string, row []string) error
	// Update overwrites the cells starting at rangeSpec with rows.
	Update(ctx context.Context, table, rangeSpec string, rows [][]string) error
	// Clear empties the cells within rangeSpec.
	Clear(ctx context.Context, table, rangeSpec string) error
}
