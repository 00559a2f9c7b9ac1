// Package bootstrap opens the configured table store for the server and admin commands.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"weddinginvite/config"
	"weddinginvite/internal/adapters/googlesheets"
	"weddinginvite/internal/domain"
	"weddinginvite/internal/repository/memory"
	"weddinginvite/internal/repository/postgres"
)

// OpenStore builds the TableStore selected by cfg.StoreDriver. The returned close function
// releases any connection pool and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.TableStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreSheets:
		store, err := googlesheets.NewStore(ctx, googlesheets.Config{
			PrivateKey:    cfg.Sheets.PrivateKey,
			ClientEmail:   cfg.Sheets.ClientEmail,
			SpreadsheetID: cfg.Sheets.SpreadsheetID,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("open sheets store: %w", err)
		}
		logger.Info("using google sheets store", "spreadsheet_id", cfg.Sheets.SpreadsheetID)
		return store, noop, nil

	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, noop, err
		}
		logger.Info("using postgres store")
		return postgres.NewTableStore(db), db.Close, nil

	case config.StoreMemory:
		logger.Warn("using in-memory store; data is lost on exit")
		return memory.NewTableStore(nil), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
