package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqlshift/sqlshift/internal/revision"
)

const usersScript = `revision: 1a2b3c4d5e6f
description: initial migration
upgrade:
  - create_table:
      name: users
      columns:
        - { name: id, type: bigint, primary_key: true }
        - { name: email, type: text, nullable: false }
        - { name: active, type: boolean, default: "true" }
  - raw_sql:
      sql: CREATE INDEX users_email_idx ON users (email)
      dialect: postgresql
downgrade:
  - drop_table: { name: users }
`

func TestDecode_FullScript(t *testing.T) {
	s, err := Decode(strings.NewReader(usersScript))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Revision != "1a2b3c4d5e6f" || s.DownRevision != "" {
		t.Fatalf("revision = %q down = %q", s.Revision, s.DownRevision)
	}
	if len(s.Up) != 2 || len(s.Down) != 1 {
		t.Fatalf("ops: up=%d down=%d", len(s.Up), len(s.Down))
	}
	ct, ok := s.Up[0].(revision.CreateTable)
	if !ok {
		t.Fatalf("up[0] is %T, want CreateTable", s.Up[0])
	}
	if ct.Name != "users" || len(ct.Columns) != 3 {
		t.Fatalf("create_table = %+v", ct)
	}
	if !ct.Columns[0].PrimaryKey {
		t.Fatalf("id should be primary key")
	}
	if ct.Columns[1].Nullable {
		t.Fatalf("email should be NOT NULL")
	}
	if !ct.Columns[2].Nullable {
		t.Fatalf("active should default to nullable")
	}
	raw, ok := s.Up[1].(revision.RawSQL)
	if !ok || raw.Dialect != "postgresql" {
		t.Fatalf("up[1] = %+v", s.Up[1])
	}
	if _, ok := s.Down[0].(revision.DropTable); !ok {
		t.Fatalf("down[0] is %T, want DropTable", s.Down[0])
	}
}

func TestDecode_RejectsUnknownOperation(t *testing.T) {
	doc := "revision: abcd1234\nupgrade:\n  - rename_table: { from: a, to: b }\n"
	_, err := Decode(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), "rename_table") {
		t.Fatalf("expected unknown operation error, got %v", err)
	}
}

func TestDecode_RejectsMissingRevision(t *testing.T) {
	_, err := Decode(strings.NewReader("description: no id\n"))
	if err == nil {
		t.Fatalf("expected error for missing revision")
	}
}

func TestLoadFile_FilenameMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wrongname_initial.yaml")
	if err := os.WriteFile(path, []byte(usersScript), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected filename/revision mismatch error")
	}
}

func TestLoadDirAndGraph(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"1a2b3c4d5e6f_initial.yaml": usersScript,
		"2b3c4d5e6f7a_add_nickname.yaml": `revision: 2b3c4d5e6f7a
down_revision: 1a2b3c4d5e6f
description: add nickname
upgrade:
  - add_column:
      table: users
      column: { name: nickname, type: text }
downgrade:
  - drop_column: { table: users, column: nickname }
`,
		"notes.txt": "ignored",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	g, err := LoadGraph(dir)
	if err != nil {
		t.Fatalf("load graph: %v", err)
	}
	if g.Len() != 2 {
		t.Fatalf("graph has %d scripts, want 2", g.Len())
	}
	head, err := g.Resolve(revision.Head)
	if err != nil || head != "2b3c4d5e6f7a" {
		t.Fatalf("head = %q, %v", head, err)
	}
}

func TestRevisionFromFilename(t *testing.T) {
	cases := map[string]string{
		"migrations/versions/1a2b3c4d5e6f_initial.yaml": "1a2b3c4d5e6f",
		"2b3c4d5e6f7a_add_nickname.yml":                 "2b3c4d5e6f7a",
		"_leading_underscore.yaml":                      "",
		"abc_too_short.yaml":                            "",
		"nounderscore.yaml":                             "",
	}
	for name, want := range cases {
		if got := RevisionFromFilename(name); got != want {
			t.Fatalf("RevisionFromFilename(%q) = %q, want %q", name, got, want)
		}
	}
}
