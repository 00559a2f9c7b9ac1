package workbook

import (
	"context"
	"fmt"
	"strings"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

// familyRowsRange covers the ID and name columns of every data row.
const familyRowsRange = "A2:B1000"

type familyRepository struct {
	store domain.TableStore
}

// NewFamilyRepository returns a domain.FamilyRepository backed by the Families sheet.
func NewFamilyRepository(store domain.TableStore) domain.FamilyRepository {
	return &familyRepository{store: store}
}

// List merges rows sharing a family_id into one family, appending members in row order.
// Rows without a family_id are skipped.
func (r *familyRepository) List(ctx context.Context) ([]*domain.Family, error) {
	table, err := r.store.Read(ctx, domain.TableFamilies, "")
	if err != nil {
		return nil, fmt.Errorf("read families: %w", err)
	}

	byID := make(map[string]*domain.Family)
	families := []*domain.Family{}
	for _, rec := range tabular.MapRows(table) {
		id := strings.TrimSpace(rec[colFamilyID])
		if id == "" {
			continue
		}
		fam, ok := byID[id]
		if !ok {
			fam = &domain.Family{ID: id, Members: []string{}, EventsInvited: []string{}}
			byID[id] = fam
			families = append(families, fam)
		}
		if fam.Name == "" {
			fam.Name = strings.TrimSpace(rec[colFamilyName])
		}
		if len(fam.EventsInvited) == 0 {
			fam.EventsInvited = splitList(rec[colEventsInvited])
		}
		if fam.ContactNumber == "" {
			fam.ContactNumber = strings.TrimSpace(rec[colContactNumber])
		}
		// Older sheets keep a comma-separated member_names cell; newer ones one member_name per row.
		fam.Members = append(fam.Members, splitList(rec.Get(colMemberName, colMemberNames))...)
	}
	return families, nil
}

func (r *familyRepository) GetByID(ctx context.Context, id string) (*domain.Family, bool, error) {
	families, err := r.List(ctx)
	if err != nil {
		return nil, false, err
	}
	for _, f := range families {
		if f.ID == id {
			return f, true, nil
		}
	}
	return nil, false, nil
}

func (r *familyRepository) ListRows(ctx context.Context) ([]domain.FamilyRow, error) {
	rows, err := r.store.Read(ctx, domain.TableFamilies, familyRowsRange)
	if err != nil {
		return nil, fmt.Errorf("read family rows: %w", err)
	}
	out := make([]domain.FamilyRow, 0, len(rows))
	for _, row := range rows {
		var fr domain.FamilyRow
		if len(row) > 0 {
			fr.ID = row[0]
		}
		if len(row) > 1 {
			fr.Name = row[1]
		}
		out = append(out, fr)
	}
	return out, nil
}

func (r *familyRepository) UpdateIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	values := make([][]string, len(ids))
	for i, id := range ids {
		values[i] = []string{id}
	}
	rng := fmt.Sprintf("A2:A%d", len(ids)+1)
	if err := r.store.Update(ctx, domain.TableFamilies, rng, values); err != nil {
		return fmt.Errorf("update family ids: %w", err)
	}
	return nil
}
