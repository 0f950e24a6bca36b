package cienv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationRevisions_FiltersAndExtracts(t *testing.T) {
	files := []string{
		"migrations/1a2b3c4d5e6f_initial.yaml",
		"migrations/2b3c4d5e6f7a_add_nickname.yml",
		"migrations/README.md",
		"app/main.go",
		"other/9f8e7d6c5b4a_not_ours.yaml",
		"migrations/1a2b3c4d5e6f_initial.yaml", // duplicate
	}
	got := MigrationRevisions(files, "migrations")
	if len(got) != 2 || got[0] != "1a2b3c4d5e6f" || got[1] != "2b3c4d5e6f7a" {
		t.Fatalf("revisions = %v", got)
	}
}

func TestMigrationRevisions_DotSlashDir(t *testing.T) {
	// git diff emits paths without a "./" prefix, but the config default is
	// "./migrations"; the two must still match.
	files := []string{
		"migrations/1a2b3c4d5e6f_initial.yaml",
		"app/main.go",
	}
	got := MigrationRevisions(files, "./migrations")
	if len(got) != 1 || got[0] != "1a2b3c4d5e6f" {
		t.Fatalf("revisions = %v, want [1a2b3c4d5e6f]", got)
	}
	if got := MigrationRevisions(files, "migrations/"); len(got) != 1 {
		t.Fatalf("trailing slash: revisions = %v", got)
	}
}

func TestMigrationRevisions_NestedDirs(t *testing.T) {
	files := []string{
		"db/migrations/databases/primary/1a2b3c4d5e6f_initial.yaml",
	}
	got := MigrationRevisions(files, "db/migrations/databases/primary")
	if len(got) != 1 || got[0] != "1a2b3c4d5e6f" {
		t.Fatalf("revisions = %v", got)
	}
}

func TestWriteOutputs_AppendsToGithubOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outputs")
	t.Setenv("GITHUB_OUTPUT", path)

	if err := WriteOutputs([]Output{
		{Key: "has_migrations", Value: "true"},
		{Key: "migration_revisions", Value: "1a2b3c4d5e6f,2b3c4d5e6f7a"},
	}); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	// A second call must append, not truncate.
	if err := WriteOutputs([]Output{{Key: "extra", Value: "1"}}); err != nil {
		t.Fatalf("write outputs: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read outputs: %v", err)
	}
	want := "has_migrations=true\nmigration_revisions=1a2b3c4d5e6f,2b3c4d5e6f7a\nextra=1\n"
	if string(data) != want {
		t.Fatalf("outputs = %q, want %q", string(data), want)
	}
}

func TestWriteOutputs_StdoutFallback(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	if err := WriteOutputs([]Output{{Key: "has_migrations", Value: "false"}}); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
}

func TestEventBaseRef(t *testing.T) {
	payload := `{"action":"opened","pull_request":{"number":7,"base":{"ref":"main"},"head":{"ref":"feature/x"}}}`
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	ref, err := EventBaseRef(path)
	if err != nil {
		t.Fatalf("event base ref: %v", err)
	}
	if ref != "main" {
		t.Fatalf("ref = %q, want main", ref)
	}
}

func TestEventBaseRef_NotAPullRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(`{"ref":"refs/heads/main"}`), 0o600); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	ref, err := EventBaseRef(path)
	if err != nil {
		t.Fatalf("event base ref: %v", err)
	}
	if ref != "" {
		t.Fatalf("ref = %q, want empty", ref)
	}
}

func TestParseSymbolicRef(t *testing.T) {
	if got := parseSymbolicRef("refs/remotes/origin/main\n"); got != "main" {
		t.Fatalf("got %q", got)
	}
	if got := parseSymbolicRef("refs/heads/main"); got != "" {
		t.Fatalf("got %q, want empty for non-remote ref", got)
	}
}

func TestPickRemoteBranch(t *testing.T) {
	lines := strings.Split("  origin/HEAD -> origin/master\n  origin/master\n  origin/develop\n", "\n")
	if got := pickRemoteBranch(lines); got != "master" {
		t.Fatalf("got %q, want master", got)
	}
	if got := pickRemoteBranch([]string{"  origin/feature/x"}); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
