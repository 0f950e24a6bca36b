package history

import (
	"context"
	"fmt"

	"github.com/sqlshift/sqlshift/internal/database"
	"github.com/sqlshift/sqlshift/internal/history/postgresql"
	"github.com/sqlshift/sqlshift/internal/history/sqlite"
	"github.com/sqlshift/sqlshift/internal/util"
)

// Reader reports the revision a live database currently sits at, as
// recorded by the deploy tooling. Readers never write.
type Reader interface {
	// CurrentRevision returns the recorded revision id, or "" when the
	// database carries no revision record yet.
	CurrentRevision(ctx context.Context) (string, error)
	Close() error
}

// Open connects a read-only revision reader for the given dialect. The DSN
// is a connection URL for postgresql and a file path for sqlite.
func Open(ctx context.Context, dialect, dsn string) (Reader, error) {
	switch util.TrimAndLower(dialect) {
	case "postgresql", "postgres":
		return postgresql.Open(ctx, postgresql.Config{DSN: dsn})
	case "sqlite":
		return sqlite.Open(ctx, sqlite.Config{Path: dsn})
	default:
		return nil, fmt.Errorf("no live history reader for dialect %q", dialect)
	}
}

// OpenForDatabase connects a reader for a configured database entry. The
// entry's options map takes precedence over its url, so connection
// components (host, user, table override) can live in the config file.
func OpenForDatabase(ctx context.Context, db database.Database) (Reader, error) {
	if len(db.Options) == 0 {
		return Open(ctx, db.Dialect, db.URL)
	}
	switch util.TrimAndLower(db.Dialect) {
	case "postgresql", "postgres":
		cfg, err := postgresql.ConfigFromMap(db.Options)
		if err != nil {
			return nil, err
		}
		if cfg.DSN == "" && cfg.Host == "" {
			cfg.DSN = db.URL
		}
		return postgresql.Open(ctx, cfg)
	case "sqlite":
		cfg, err := sqlite.ConfigFromMap(db.Options)
		if err != nil {
			return nil, err
		}
		if cfg.Path == "" {
			cfg.Path = db.URL
		}
		return sqlite.Open(ctx, cfg)
	default:
		return nil, fmt.Errorf("no live history reader for dialect %q", db.Dialect)
	}
}
