package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sqlshift/sqlshift/internal/database"
)

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	if err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}

func TestOpen_SQLitePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.db")
	r, err := Open(context.Background(), "sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = r.Close() }()

	rev, err := r.CurrentRevision(context.Background())
	if err != nil {
		t.Fatalf("current revision: %v", err)
	}
	if rev != "" {
		t.Fatalf("fresh database should have no revision, got %q", rev)
	}
}

func TestOpenForDatabase_SQLiteOptions(t *testing.T) {
	db := database.Database{
		Name:    "audit",
		Dialect: "sqlite",
		Options: map[string]interface{}{
			"path":  filepath.Join(t.TempDir(), "audit.db"),
			"table": "deploy_revision",
		},
	}
	r, err := OpenForDatabase(context.Background(), db)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = r.Close() }()

	rev, err := r.CurrentRevision(context.Background())
	if err != nil {
		t.Fatalf("current revision: %v", err)
	}
	if rev != "" {
		t.Fatalf("fresh database should have no revision, got %q", rev)
	}
}

func TestOpenForDatabase_URLFallback(t *testing.T) {
	db := database.Database{
		Name:    "primary",
		Dialect: "sqlite",
		URL:     filepath.Join(t.TempDir(), "primary.db"),
	}
	r, err := OpenForDatabase(context.Background(), db)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_ = r.Close()

	db.Dialect = "oracle"
	if _, err := OpenForDatabase(context.Background(), db); err == nil {
		t.Fatalf("expected error for unknown dialect")
	}
}
