package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqlshift/sqlshift/pkg/plan"
)

func TestEmitReport_PlainSQLToFile(t *testing.T) {
	report := plan.Report{Results: []plan.Result{
		{Database: "primary", SQL: "-- revision: 1a2b3c4d5e6f\nCREATE TABLE \"users\" ();\n\n"},
		{Database: "billing", Err: os.ErrNotExist},
	}}
	out := filepath.Join(t.TempDir(), "plan.sql")
	if err := emitReport(report, out, false); err != nil {
		t.Fatalf("emit: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "-- database: primary") {
		t.Fatalf("missing database header:\n%s", got)
	}
	if strings.Contains(got, "billing") {
		t.Fatalf("failed database must not appear in SQL output:\n%s", got)
	}
}

func TestEmitReport_Markdown(t *testing.T) {
	report := plan.Report{Results: []plan.Result{
		{Database: "", Revisions: []string{"1a2b3c4d5e6f"}, SQL: "CREATE TABLE \"users\" ();\n"},
	}}
	out := filepath.Join(t.TempDir(), "plan.md")
	if err := emitReport(report, out, true); err != nil {
		t.Fatalf("emit: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "## Migration plan") {
		t.Fatalf("unexpected markdown:\n%s", data)
	}
}

func TestBoolString(t *testing.T) {
	if boolString(true) != "true" || boolString(false) != "false" {
		t.Fatalf("boolString broken")
	}
}
