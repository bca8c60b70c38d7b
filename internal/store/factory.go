package store

import (
	"fmt"
	"log/slog"

	"github.com/monjauro/app/internal/config"
)

// New creates the Store selected by config. "file" keeps each collection
// as a JSON blob on disk; "sqlite" (or "pgx") uses the relational driver.
func New(cfg *config.Config) (Store, error) {
	slog.Info("initializing store", "driver", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case "file":
		return NewFileStore(cfg.DataPath)

	case "sqlite", "pgx":
		return NewDBStore(cfg.StoreDriver, cfg.DBConnection)

	default:
		return nil, fmt.Errorf("unknown store driver: %s (supported: file, sqlite, pgx)", cfg.StoreDriver)
	}
}
