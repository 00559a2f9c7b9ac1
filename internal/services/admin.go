package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

const inviteLinksRange = "A1:B1000"

type sheetHeader struct {
	table   string
	columns []string
}

// sheetHeaders are the header rows written by SetupSheets ahead of the Responses header.
var sheetHeaders = []sheetHeader{
	{domain.TableFamilies, []string{"family_id", "family_name", "member_names", "contact_number", "events_invited", "qr_url", "created_at"}},
	{domain.TableEvents, []string{"event_id", "event_name", "event_date", "event_timing", "wardrobe", "venue", "display_order", "day"}},
	{domain.TableConfig, []string{"key", "value"}},
	{domain.TableItinerary, []string{"day", "time", "title", "description", "type", "display_order"}},
	{domain.TableWardrobe, []string{"day", "event_name", "dress_code", "colors", "notes", "display_order"}},
}

type adminService struct {
	store          domain.TableStore
	familyRepo     domain.FamilyRepository
	schema         domain.ResponseSchema
	contextTimeout time.Duration
}

func NewAdminService(store domain.TableStore, familyRepo domain.FamilyRepository, schema domain.ResponseSchema, timeout time.Duration) domain.AdminService {
	return &adminService{
		store:          store,
		familyRepo:     familyRepo,
		schema:         schema,
		contextTimeout: timeout,
	}
}

func headerRange(columns []string) string {
	return "A1:" + tabular.ColumnName(len(columns)-1) + "1"
}

// SetupSheets writes the header row of every table. Existing data rows are left untouched.
func (s *adminService) SetupSheets(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	headers := make([]sheetHeader, 0, len(sheetHeaders)+1)
	headers = append(headers, sheetHeaders...)
	headers = append(headers, sheetHeader{domain.TableResponses, s.schema.Columns()})

	for _, h := range headers {
		if err := s.store.Update(ctx, h.table, headerRange(h.columns), [][]string{h.columns}); err != nil {
			return fmt.Errorf("write %s headers: %w", h.table, err)
		}
		log.Printf("[ADMIN] %s headers written", h.table)
	}
	return nil
}

// RegenerateFamilyIDs numbers families FAMILY_001, FAMILY_002, ... by distinct family_name in
// first-appearance order and rewrites the ID column when anything changed.
func (s *adminService) RegenerateFamilyIDs(ctx context.Context) (map[string]string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, err := s.familyRepo.ListRows(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list family rows: %w", err)
	}

	mapping := make(map[string]string)
	ids := make([]string, len(rows))
	changed := 0
	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			ids[i] = row.ID
			continue
		}
		id, ok := mapping[name]
		if !ok {
			id = fmt.Sprintf("FAMILY_%03d", len(mapping)+1)
			mapping[name] = id
		}
		ids[i] = id
		if row.ID != id {
			changed++
		}
	}

	if changed == 0 {
		return mapping, 0, nil
	}
	if err := s.familyRepo.UpdateIDs(ctx, ids); err != nil {
		return nil, 0, fmt.Errorf("update family ids: %w", err)
	}
	log.Printf("[ADMIN] %d family rows renumbered", changed)
	return mapping, changed, nil
}

// GenerateInviteLinks rewrites the Invite links table with one RSVP link per family.
func (s *adminService) GenerateInviteLinks(ctx context.Context, baseURL string) ([]domain.InviteLink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, err := s.familyRepo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list family rows: %w", err)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	seen := make(map[string]struct{})
	links := []domain.InviteLink{}
	values := [][]string{{"Family Name", "RSVP Link"}}
	for _, row := range rows {
		id := strings.TrimSpace(row.ID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		link := domain.InviteLink{
			FamilyID:   id,
			FamilyName: strings.TrimSpace(row.Name),
			URL:        baseURL + "/rsvp?id=" + url.QueryEscape(id),
		}
		links = append(links, link)
		values = append(values, []string{link.FamilyName, link.URL})
	}

	if err := s.store.Clear(ctx, domain.TableInviteLinks, inviteLinksRange); err != nil {
		return nil, fmt.Errorf("clear invite links: %w", err)
	}
	if err := s.store.Update(ctx, domain.TableInviteLinks, fmt.Sprintf("A1:B%d", len(values)), values); err != nil {
		return nil, fmt.Errorf("write invite links: %w", err)
	}
	log.Printf("[ADMIN] %d invite links written", len(links))
	return links, nil
}
