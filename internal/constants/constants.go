package constants

import "time"

// Database Constants
const (
	// PostgreSQL defaults
	DefaultPostgresPort    = 5432
	DefaultPostgresSSLMode = "disable"

	// Connection pool settings
	DefaultPostgresMaxConnections = 4 // read-only revision lookups need very little
	DefaultSQLiteMaxConnections   = 1 // SQLite allows only one writer

	// RevisionTable is where the deploy tooling records the revision a
	// live database sits at (one row, one column).
	RevisionTable = "schema_revision"
)

// Time and Duration Constants
const (
	DefaultConnectTimeout  = 10 * time.Second
	DefaultMaxConnLifetime = 5 * time.Minute
)

// CI Constants
const (
	// GithubOutputEnv names the file GitHub Actions collects step outputs from.
	GithubOutputEnv = "GITHUB_OUTPUT"
	// GithubEventPathEnv points at the JSON payload of the triggering event.
	GithubEventPathEnv = "GITHUB_EVENT_PATH"
)
