package workbook

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

// TimestampLayout is the machine-sortable UTC format of submitted_at.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// familyIDFallbackColumn is where family_id lives when the Responses sheet has no header for it.
const familyIDFallbackColumn = 1

type responseRepository struct {
	store  domain.TableStore
	schema domain.ResponseSchema
	now    func() time.Time
	newID  func(at time.Time) string
}

// NewResponseRepository returns a domain.ResponseRepository that writes rows in the layout of
// schema. Rows are only ever appended.
func NewResponseRepository(store domain.TableStore, schema domain.ResponseSchema) domain.ResponseRepository {
	return &responseRepository{
		store:  store,
		schema: schema,
		now:    time.Now,
		newID:  newResponseID,
	}
}

// newResponseID combines the millisecond clock with random characters so rapid sequential
// saves do not collide.
func newResponseID(at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("RESP_%d_%s", at.UnixMilli(), suffix)
}

func (r *responseRepository) Schema() domain.ResponseSchema {
	return r.schema
}

func (r *responseRepository) Save(ctx context.Context, resp domain.Response) error {
	if resp == nil || resp.Schema() != r.schema {
		return fmt.Errorf("save response: %w", domain.ErrSchemaMismatch)
	}
	at := r.now().UTC()
	resp.Stamp(r.newID(at), at)

	row := tabular.ToRow(responseRecord(resp), r.schema.Columns())
	if err := r.store.Append(ctx, domain.TableResponses, row); err != nil {
		return fmt.Errorf("append response: %w", err)
	}
	return nil
}

func responseRecord(resp domain.Response) tabular.Record {
	switch v := resp.(type) {
	case *domain.PerEventResponse:
		return tabular.Record{
			"response_id":      v.ResponseID,
			"family_id":        v.FamilyID,
			"family_name":      v.FamilyName,
			"event_id":         v.EventID,
			"event_name":       v.EventName,
			"attending_count":  strconv.Itoa(v.AttendingCount),
			"member_responses": v.MemberResponses,
			"notes":            v.Notes,
			"submitted_at":     v.SubmittedAt.Format(TimestampLayout),
		}
	case *domain.PerMemberDayResponse:
		attending := "NO"
		if v.Attending {
			attending = "YES"
		}
		return tabular.Record{
			"response_id":  v.ResponseID,
			"family_id":    v.FamilyID,
			"family_name":  v.FamilyName,
			"member_name":  v.MemberName,
			"day":          v.Day,
			"attending":    attending,
			"submitted_at": v.SubmittedAt.Format(TimestampLayout),
		}
	}
	return tabular.Record{}
}

func (r *responseRepository) HasFamilyResponded(ctx context.Context, familyID string) (bool, error) {
	table, err := r.store.Read(ctx, domain.TableResponses, "")
	if err != nil {
		return false, fmt.Errorf("read responses: %w", err)
	}
	if len(table) <= 1 {
		return false, nil
	}
	col := tabular.ColumnIndex(table[0], colFamilyID)
	if col < 0 {
		col = familyIDFallbackColumn
	}
	for _, row := range table[1:] {
		if col < len(row) && row[col] == familyID {
			return true, nil
		}
	}
	return false, nil
}

func (r *responseRepository) ListRaw(ctx context.Context) ([][]string, error) {
	table, err := r.store.Read(ctx, domain.TableResponses, "")
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	return table, nil
}
