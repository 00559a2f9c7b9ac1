// Package memory provides an in-process domain.TableStore for local runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

// TableStore keeps every table as a slice of rows guarded by one RWMutex.
type TableStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// NewTableStore returns an empty store. seed, if non-nil, is copied in as initial tables.
func NewTableStore(seed map[string][][]string) *TableStore {
	s := &TableStore{tables: make(map[string][][]string)}
	for name, rows := range seed {
		s.tables[name] = copyRows(rows)
	}
	return s
}

func (s *TableStore) Read(ctx context.Context, table, rangeSpec string) ([][]string, error) {
	if rangeSpec == "" {
		rangeSpec = domain.DefaultReadRange
	}
	r, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(r.Slice(s.tables[table])), nil
}

func (s *TableStore) Append(ctx context.Context, table string, row []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], append([]string(nil), row...))
	return nil
}

func (s *TableStore) Update(ctx context.Context, table, rangeSpec string, rows [][]string) error {
	r, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = r.Apply(s.tables[table], copyRows(rows))
	return nil
}

func (s *TableStore) Clear(ctx context.Context, table, rangeSpec string) error {
	r, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table]; ok {
		s.tables[table] = r.Blank(s.tables[table])
	}
	return nil
}

// Rows returns a copy of the whole table.
func (s *TableStore) Rows(table string) [][]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRows(s.tables[table])
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string{}, row...)
	}
	return out
}
