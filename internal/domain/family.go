package domain

import "context"

// Family is an invited household sharing one RSVP link.
// swagger:model Family
type Family struct {
	ID            string   `json:"family_id"`
	Name          string   `json:"family_name"`
	Members       []string `json:"members"`
	EventsInvited []string `json:"events_invited"`
	ContactNumber string   `json:"contact_number,omitempty"`
}

// UniqueMembers returns the member names in family order, each once. A name listed on
// several Families rows appears once per row in Members.
func (f *Family) UniqueMembers() []string {
	seen := make(map[string]struct{}, len(f.Members))
	out := make([]string, 0, len(f.Members))
	for _, m := range f.Members {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// FamilyRow is one raw row of the Families table as used by admin tooling.
type FamilyRow struct {
	ID   string
	Name string
}

// FamilyRepository defines read access to the Families table.
type FamilyRepository interface {
	List(ctx context.Context) ([]*Family, error)
	// GetByID returns (nil, false, nil) when no family has the given ID.
	GetByID(ctx context.Context, id string) (*Family, bool, error)
	// ListRows returns the ID and name column of every data row, in sheet order.
	ListRows(ctx context.Context) ([]FamilyRow, error)
	// UpdateIDs rewrites the ID column for the first len(ids) data rows.
	UpdateIDs(ctx context.Context, ids []string) error
}
