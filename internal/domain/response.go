package domain

import (
	"context"
	"fmt"
	"time"
)

// ResponseSchema selects which Responses table layout is in use.
type ResponseSchema string

const (
	// SchemaPerEvent stores one row per family per event.
	SchemaPerEvent ResponseSchema = "per_event"
	// SchemaPerMemberDay stores one row per member per invited day.
	SchemaPerMemberDay ResponseSchema = "per_member_day"
)

// ParseResponseSchema validates a configured schema name. Empty means SchemaPerEvent.
func ParseResponseSchema(s string) (ResponseSchema, error) {
	switch ResponseSchema(s) {
	case "", SchemaPerEvent:
		return SchemaPerEvent, nil
	case SchemaPerMemberDay:
		return SchemaPerMemberDay, nil
	}
	return "", fmt.Errorf("unknown response schema %q", s)
}

// Columns returns the Responses header row for the schema.
func (s ResponseSchema) Columns() []string {
	if s == SchemaPerMemberDay {
		return []string{"response_id", "family_id", "family_name", "member_name", "day", "attending", "submitted_at"}
	}
	return []string{"response_id", "family_id", "family_name", "event_id", "event_name", "attending_count", "member_responses", "notes", "submitted_at"}
}

// Response is one append-only attendance record: *PerEventResponse or *PerMemberDayResponse.
type Response interface {
	Schema() ResponseSchema
	// Stamp sets the generated ID and submission time before the row is written.
	Stamp(id string, at time.Time)
}

// PerEventResponse aggregates a family's decisions for one event.
type PerEventResponse struct {
	ResponseID      string    `json:"response_id"`
	FamilyID        string    `json:"family_id"`
	FamilyName      string    `json:"family_name"`
	EventID         string    `json:"event_id"`
	EventName       string    `json:"event_name"`
	AttendingCount  int       `json:"attending_count"`
	MemberResponses string    `json:"member_responses"`
	Notes           string    `json:"notes"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

func (r *PerEventResponse) Schema() ResponseSchema { return SchemaPerEvent }

func (r *PerEventResponse) Stamp(id string, at time.Time) {
	r.ResponseID = id
	r.SubmittedAt = at
}

// PerMemberDayResponse is one member's decision for one day.
type PerMemberDayResponse struct {
	ResponseID  string    `json:"response_id"`
	FamilyID    string    `json:"family_id"`
	FamilyName  string    `json:"family_name"`
	MemberName  string    `json:"member_name"`
	Day         string    `json:"day"`
	Attending   bool      `json:"attending"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func (r *PerMemberDayResponse) Schema() ResponseSchema { return SchemaPerMemberDay }

func (r *PerMemberDayResponse) Stamp(id string, at time.Time) {
	r.ResponseID = id
	r.SubmittedAt = at
}

// ResponseRepository defines access to the append-only Responses table.
type ResponseRepository interface {
	Schema() ResponseSchema
	// Save appends one row for resp. It returns ErrSchemaMismatch if resp is not of the active schema.
	Save(ctx context.Context, resp Response) error
	// HasFamilyResponded reports whether any response row carries familyID.
	HasFamilyResponded(ctx context.Context, familyID string) (bool, error)
	// ListRaw returns the Responses table as stored, header row included.
	ListRaw(ctx context.Context) ([][]string, error)
}
