package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sqlshift/sqlshift/internal/database"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestConfigDoc_Load_SingleDatabase(t *testing.T) {
	path := writeConfig(t, `
migrate_dir: db/migrations
dialect: sqlite
url: ./deploy.db
logging:
  level: debug
  format: json
`)
	var doc ConfigDoc
	if err := doc.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.MigrateDir != "db/migrations" || doc.Dialect != "sqlite" {
		t.Fatalf("doc = %+v", doc)
	}
	if len(doc.Databases) != 0 {
		t.Fatalf("expected no named databases, got %v", doc.Databases)
	}

	targets, err := doc.Targets("")
	if err != nil {
		t.Fatalf("targets: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != database.DefaultName || targets[0].Dialect != "sqlite" {
		t.Fatalf("targets = %v", targets)
	}
}

func TestConfigDoc_Load_MultiDatabaseDefaults(t *testing.T) {
	path := writeConfig(t, `
migrate_dir: db/migrations
dialect: postgresql
databases:
  - name: primary
    url: postgres://localhost/primary
  - name: billing
    migrate_dir: db/billing
    dialect: mysql
    options:
      host: billing.internal
      table: deploy_revision
`)
	var doc ConfigDoc
	if err := doc.Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Databases) != 2 {
		t.Fatalf("databases = %v", doc.Databases)
	}
	// Entries inherit the top-level dialect and derive their script dir
	// from migrate_dir/<name> unless set explicitly.
	if doc.Databases[0].Dialect != "postgresql" {
		t.Fatalf("primary dialect = %q", doc.Databases[0].Dialect)
	}
	if doc.Databases[0].MigrateDir != filepath.Join("db/migrations", "primary") {
		t.Fatalf("primary dir = %q", doc.Databases[0].MigrateDir)
	}
	if doc.Databases[1].MigrateDir != "db/billing" || doc.Databases[1].Dialect != "mysql" {
		t.Fatalf("billing = %+v", doc.Databases[1])
	}
	if doc.Databases[1].Options["host"] != "billing.internal" {
		t.Fatalf("billing options = %v", doc.Databases[1].Options)
	}
}

func TestConfigDoc_Load_MissingName(t *testing.T) {
	path := writeConfig(t, `
databases:
  - migrate_dir: db/anonymous
`)
	var doc ConfigDoc
	err := doc.Load(path)
	var cfgErr *database.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}

func TestConfigDoc_Load_NotAFile(t *testing.T) {
	var doc ConfigDoc
	if err := doc.Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for directory path")
	}
}

func TestConfigDoc_SetupLogging(t *testing.T) {
	doc := ConfigDoc{Logging: LoggingConfig{Level: "warn", Format: "text"}}
	if err := doc.SetupLogging(); err != nil {
		t.Fatalf("setup logging: %v", err)
	}

	doc = ConfigDoc{Logging: LoggingConfig{Level: "verbose"}}
	if err := doc.SetupLogging(); err == nil {
		t.Fatalf("expected error for bad level")
	}

	doc = ConfigDoc{Logging: LoggingConfig{Format: "xml"}}
	if err := doc.SetupLogging(); err == nil {
		t.Fatalf("expected error for bad format")
	}
}
