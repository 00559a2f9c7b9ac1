package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"weddinginvite/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

const testTimeout = 5 * time.Second

// fakeFamilyRepo is an in-memory FamilyRepository for tests.
type fakeFamilyRepo struct {
	families []*domain.Family
	rows     []domain.FamilyRow
	updated  []string
	err      error
}

func (f *fakeFamilyRepo) List(ctx context.Context) ([]*domain.Family, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.families, nil
}

func (f *fakeFamilyRepo) GetByID(ctx context.Context, id string) (*domain.Family, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	for _, fam := range f.families {
		if fam.ID == id {
			return fam, true, nil
		}
	}
	return nil, false, nil
}

func (f *fakeFamilyRepo) ListRows(ctx context.Context) ([]domain.FamilyRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeFamilyRepo) UpdateIDs(ctx context.Context, ids []string) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append([]string(nil), ids...)
	return nil
}

// fakeEventRepo serves events per family.
type fakeEventRepo struct {
	all      []*domain.Event
	byFamily map[string][]*domain.Event
	err      error
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.all, nil
}

func (f *fakeEventRepo) ListForFamily(ctx context.Context, familyID string) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if evs, ok := f.byFamily[familyID]; ok {
		return evs, nil
	}
	return []*domain.Event{}, nil
}

// fakeResponseRepo records saved responses. failAt makes the Nth Save (1-based) fail with err.
type fakeResponseRepo struct {
	schema    domain.ResponseSchema
	saved     []domain.Response
	responded map[string]bool
	failAt    int
	err       error
	readErr   error
}

func (f *fakeResponseRepo) Schema() domain.ResponseSchema {
	if f.schema == "" {
		return domain.SchemaPerEvent
	}
	return f.schema
}

func (f *fakeResponseRepo) Save(ctx context.Context, resp domain.Response) error {
	if f.failAt > 0 && len(f.saved)+1 == f.failAt {
		return f.err
	}
	f.saved = append(f.saved, resp)
	return nil
}

func (f *fakeResponseRepo) HasFamilyResponded(ctx context.Context, familyID string) (bool, error) {
	if f.readErr != nil {
		return false, f.readErr
	}
	return f.responded[familyID], nil
}

func (f *fakeResponseRepo) ListRaw(ctx context.Context) ([][]string, error) {
	return nil, nil
}

type fakeConfigRepo struct {
	values map[string]string
	err    error
}

func (f *fakeConfigRepo) All(ctx context.Context) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeConfigRepo) Get(ctx context.Context, key string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	v, ok := f.values[key]
	return v, ok && v != "", nil
}

type fakeItineraryRepo struct {
	itinerary []*domain.ItineraryItem
	wardrobe  []*domain.WardrobeItem
}

func (f *fakeItineraryRepo) ListItinerary(ctx context.Context) ([]*domain.ItineraryItem, error) {
	return f.itinerary, nil
}

func (f *fakeItineraryRepo) ListWardrobe(ctx context.Context) ([]*domain.WardrobeItem, error) {
	return f.wardrobe, nil
}

// fakeNotifier records notifications and optionally fails.
type fakeNotifier struct {
	sent []*domain.RSVPReceivedEmailData
	err  error
}

func (f *fakeNotifier) RSVPReceived(ctx context.Context, data *domain.RSVPReceivedEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}
