package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/internal/constants"
)

// Reader reads the recorded schema revision from a live PostgreSQL
// database.
type Reader struct {
	pool  *pgxpool.Pool
	table string
}

// Open connects and pings the database.
func Open(ctx context.Context, cfg Config) (*Reader, error) {
	dsn := cfg.ToDSN()
	if dsn == "" {
		return nil, fmt.Errorf("postgresql history reader: empty dsn")
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgresql dsn: %w", err)
	}
	poolCfg.MaxConns = constants.DefaultPostgresMaxConnections
	poolCfg.MaxConnLifetime = constants.DefaultMaxConnLifetime
	poolCfg.ConnConfig.ConnectTimeout = constants.DefaultConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgresql: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgresql: %w", err)
	}

	logger := common.GetLogger().WithComponent("history").WithDialect("postgresql").WithDSN(dsn)
	logger.Debug("connected revision reader")

	return &Reader{pool: pool, table: cfg.table()}, nil
}

// CurrentRevision returns the recorded revision id, or "" when the
// revision table does not exist or holds no row.
func (r *Reader) CurrentRevision(ctx context.Context) (string, error) {
	var exists bool
	if err := pgxscan.Get(ctx, r.pool, &exists, "SELECT to_regclass($1) IS NOT NULL", r.table); err != nil {
		return "", fmt.Errorf("check revision table: %w", err)
	}
	if !exists {
		return "", nil
	}

	query, args, err := sq.Select("revision").
		From(r.table).
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build revision query: %w", err)
	}

	var revisions []string
	if err := pgxscan.Select(ctx, r.pool, &revisions, query, args...); err != nil {
		return "", fmt.Errorf("read current revision: %w", err)
	}
	if len(revisions) == 0 {
		return "", nil
	}
	return revisions[0], nil
}

// Close releases the connection pool.
func (r *Reader) Close() error {
	r.pool.Close()
	return nil
}
