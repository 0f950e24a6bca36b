package database

import (
	"errors"
	"testing"
)

func TestSelectNames_AllInDeclaredOrder(t *testing.T) {
	got, err := SelectNames([]string{"primary", "analytics"}, "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 || got[0] != "primary" || got[1] != "analytics" {
		t.Fatalf("selected = %v, want [primary analytics]", got)
	}
}

func TestSelectNames_DefaultWhenNothingConfigured(t *testing.T) {
	got, err := SelectNames(nil, "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0] != DefaultName {
		t.Fatalf("selected = %v, want the unnamed default", got)
	}
}

func TestSelectNames_RequestedMember(t *testing.T) {
	got, err := SelectNames([]string{"primary", "analytics"}, "analytics")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0] != "analytics" {
		t.Fatalf("selected = %v, want [analytics]", got)
	}
}

func TestSelectNames_UnknownRequested(t *testing.T) {
	_, err := SelectNames([]string{"primary", "analytics"}, "unknown")
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cerr.Database != "unknown" {
		t.Fatalf("error database = %q, want unknown", cerr.Database)
	}
}

func TestSelectNames_RequestedWithoutConfiguration(t *testing.T) {
	_, err := SelectNames(nil, "primary")
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestSelect_FallbackEntry(t *testing.T) {
	fallback := Database{MigrateDir: "./migrations", Dialect: "postgresql"}
	got, err := Select(nil, fallback, "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 1 || got[0].Name != DefaultName || got[0].MigrateDir != "./migrations" {
		t.Fatalf("selected = %+v", got)
	}
}

func TestSelect_PreservesDeclarationOrder(t *testing.T) {
	dbs := []Database{
		{Name: "primary", MigrateDir: "m/primary"},
		{Name: "analytics", MigrateDir: "m/analytics"},
	}
	got, err := Select(dbs, Database{}, "")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(got) != 2 || got[0].Name != "primary" || got[1].Name != "analytics" {
		t.Fatalf("selected = %+v", got)
	}
}
