package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/internal/constants"
	_ "modernc.org/sqlite"
)

// Reader reads the recorded schema revision from an on-disk SQLite
// database.
type Reader struct {
	db    *sql.DB
	table string
}

// Open opens the database file and verifies the connection.
func Open(ctx context.Context, cfg Config) (*Reader, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite history reader: empty path")
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(constants.DefaultSQLiteMaxConnections)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	logger := common.GetLogger().WithComponent("history").WithDialect("sqlite")
	logger.Debug("connected revision reader", "path", cfg.Path)

	return &Reader{db: db, table: cfg.table()}, nil
}

// CurrentRevision returns the recorded revision id, or "" when the
// revision table does not exist or holds no row.
func (r *Reader) CurrentRevision(ctx context.Context) (string, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", r.table,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("check revision table: %w", err)
	}
	if count == 0 {
		return "", nil
	}

	var revision string
	// #nosec G201 -- table name comes from validated configuration, not user input
	err = r.db.QueryRowContext(ctx, fmt.Sprintf("SELECT revision FROM %s LIMIT 1", r.table)).Scan(&revision)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read current revision: %w", err)
	}
	return revision, nil
}

// Close closes the underlying handle.
func (r *Reader) Close() error {
	return r.db.Close()
}
