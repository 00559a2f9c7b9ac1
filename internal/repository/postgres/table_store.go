package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/lib/pq"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/tabular"
)

// schema creates the single table that holds every sheet, one row per sheet row.
const schema = `
	CREATE TABLE IF NOT EXISTS sheet_rows (
		id    BIGSERIAL PRIMARY KEY,
		sheet TEXT NOT NULL,
		cells TEXT[] NOT NULL DEFAULT '{}'
	);
	CREATE INDEX IF NOT EXISTS idx_sheet_rows_sheet ON sheet_rows(sheet, id)
`

type tableStore struct {
	DB *sql.DB
}

// NewTableStore returns a domain.TableStore that keeps sheets in Postgres.
// Row order is insertion order (the id column).
func NewTableStore(db *sql.DB) domain.TableStore {
	return &tableStore{DB: db}
}

// EnsureSchema creates the sheet_rows table if it does not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return unavailable("ensure schema", "sheet_rows", err)
	}
	return nil
}

type storedRow struct {
	id    int64
	cells []string
}

func (r *tableStore) Read(ctx context.Context, table, rangeSpec string) ([][]string, error) {
	if rangeSpec == "" {
		rangeSpec = domain.DefaultReadRange
	}
	rng, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	rows, err := r.loadRows(ctx, r.DB, table, false)
	if err != nil {
		return nil, unavailable("read", table, err)
	}
	return rng.Slice(cellsOf(rows)), nil
}

func (r *tableStore) Append(ctx context.Context, table string, row []string) error {
	query := `
		INSERT INTO sheet_rows (sheet, cells)
		VALUES ($1, $2)
	`
	if _, err := r.DB.ExecContext(ctx, query, table, pq.Array(row)); err != nil {
		return unavailable("append", table, err)
	}
	return nil
}

func (r *tableStore) Update(ctx context.Context, table, rangeSpec string, values [][]string) error {
	rng, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return r.rewrite(ctx, table, func(cells [][]string) [][]string {
		return rng.Apply(cells, values)
	})
}

func (r *tableStore) Clear(ctx context.Context, table, rangeSpec string) error {
	rng, err := tabular.ParseRange(rangeSpec)
	if err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	return r.rewrite(ctx, table, rng.Blank)
}

// rewrite loads the sheet under a row lock, applies edit and persists the rows that changed.
func (r *tableStore) rewrite(ctx context.Context, table string, edit func([][]string) [][]string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin", table, err)
	}
	defer tx.Rollback()

	rows, err := r.loadRows(ctx, tx, table, true)
	if err != nil {
		return unavailable("load", table, err)
	}
	before := cellsOf(rows)
	after := edit(cellsOf(rows))

	for i, cells := range after {
		if i < len(rows) {
			if slices.Equal(before[i], cells) {
				continue
			}
			if _, err := tx.ExecContext(ctx, `UPDATE sheet_rows SET cells = $1 WHERE id = $2`, pq.Array(cells), rows[i].id); err != nil {
				return unavailable("update", table, err)
			}
			continue
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO sheet_rows (sheet, cells) VALUES ($1, $2)`, table, pq.Array(cells)); err != nil {
			return unavailable("insert", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return unavailable("commit", table, err)
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *tableStore) loadRows(ctx context.Context, q queryer, table string, lock bool) ([]storedRow, error) {
	query := `
		SELECT id, cells
		FROM sheet_rows
		WHERE sheet = $1
		ORDER BY id
	`
	if lock {
		query += " FOR UPDATE"
	}
	rows, err := q.QueryContext(ctx, query, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []storedRow
	for rows.Next() {
		var sr storedRow
		if err := rows.Scan(&sr.id, pq.Array(&sr.cells)); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func cellsOf(rows []storedRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = append([]string{}, r.cells...)
	}
	return out
}

func unavailable(op, table string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, table, domain.ErrStoreUnavailable, err)
}
