package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
	"gopkg.in/yaml.v3"
)

// fileDoc mirrors the on-disk YAML layout of one migration script.
type fileDoc struct {
	Revision     string   `yaml:"revision"`
	DownRevision string   `yaml:"down_revision"`
	Description  string   `yaml:"description"`
	Upgrade      []opNode `yaml:"upgrade"`
	Downgrade    []opNode `yaml:"downgrade"`
}

// opNode is one list entry under upgrade/downgrade: a mapping with exactly
// one key naming the operation kind.
type opNode struct {
	kind string
	body yaml.Node
}

func (o *opNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: operation must be a single-key mapping", value.Line)
	}
	o.kind = value.Content[0].Value
	o.body = *value.Content[1]
	return nil
}

type columnDoc struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Nullable   *bool  `yaml:"nullable"`
	PrimaryKey bool   `yaml:"primary_key"`
	Default    string `yaml:"default"`
}

func (c columnDoc) toColumn() revision.Column {
	nullable := true // columns are nullable unless said otherwise
	if c.Nullable != nil {
		nullable = *c.Nullable
	}
	return revision.Column{
		Name:       c.Name,
		Type:       c.Type,
		Nullable:   nullable,
		PrimaryKey: c.PrimaryKey,
		Default:    c.Default,
	}
}

func (o *opNode) toOperation() (revision.Operation, error) {
	switch o.kind {
	case "create_table":
		var doc struct {
			Name    string      `yaml:"name"`
			Columns []columnDoc `yaml:"columns"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		cols := make([]revision.Column, 0, len(doc.Columns))
		for _, c := range doc.Columns {
			cols = append(cols, c.toColumn())
		}
		return revision.CreateTable{Name: doc.Name, Columns: cols}, nil
	case "drop_table":
		var doc struct {
			Name string `yaml:"name"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.DropTable{Name: doc.Name}, nil
	case "add_column":
		var doc struct {
			Table  string    `yaml:"table"`
			Column columnDoc `yaml:"column"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.AddColumn{Table: doc.Table, Column: doc.Column.toColumn()}, nil
	case "drop_column":
		var doc struct {
			Table  string `yaml:"table"`
			Column string `yaml:"column"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.DropColumn{Table: doc.Table, Column: doc.Column}, nil
	case "create_index":
		var doc struct {
			Name    string   `yaml:"name"`
			Table   string   `yaml:"table"`
			Columns []string `yaml:"columns"`
			Unique  bool     `yaml:"unique"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.CreateIndex{Name: doc.Name, Table: doc.Table, Columns: doc.Columns, Unique: doc.Unique}, nil
	case "drop_index":
		var doc struct {
			Name  string `yaml:"name"`
			Table string `yaml:"table"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.DropIndex{Name: doc.Name, Table: doc.Table}, nil
	case "raw_sql":
		var doc struct {
			SQL     string `yaml:"sql"`
			Dialect string `yaml:"dialect"`
		}
		if err := o.body.Decode(&doc); err != nil {
			return nil, err
		}
		return revision.RawSQL{SQL: doc.SQL, Dialect: doc.Dialect}, nil
	default:
		return nil, fmt.Errorf("unknown operation kind %q", o.kind)
	}
}

// Decode parses one migration script document.
func Decode(r io.Reader) (revision.Script, error) {
	dec := yaml.NewDecoder(r)
	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		return revision.Script{}, err
	}
	if strings.TrimSpace(doc.Revision) == "" {
		return revision.Script{}, fmt.Errorf("missing revision field")
	}
	s := revision.Script{
		Revision:     strings.TrimSpace(doc.Revision),
		DownRevision: strings.TrimSpace(doc.DownRevision),
		Description:  doc.Description,
	}
	for _, n := range doc.Upgrade {
		op, err := n.toOperation()
		if err != nil {
			return revision.Script{}, fmt.Errorf("upgrade: %w", err)
		}
		s.Up = append(s.Up, op)
	}
	for _, n := range doc.Downgrade {
		op, err := n.toOperation()
		if err != nil {
			return revision.Script{}, fmt.Errorf("downgrade: %w", err)
		}
		s.Down = append(s.Down, op)
	}
	return s, nil
}

// LoadFile reads and parses one script file. The filename must carry the
// revision id as its prefix ("<revision>_<slug>.yaml"); a mismatch with the
// revision field is a load error, not something to guess around.
func LoadFile(path string) (revision.Script, error) {
	clean := filepath.Clean(path)
	// #nosec G304 -- path comes from a controlled directory listing of migration files
	f, err := os.Open(clean)
	if err != nil {
		return revision.Script{}, err
	}
	defer func() { _ = f.Close() }()
	s, err := Decode(f)
	if err != nil {
		return revision.Script{}, fmt.Errorf("parse %s: %w", filepath.Base(clean), err)
	}
	name := filepath.Base(clean)
	if !strings.HasPrefix(name, s.Revision+"_") {
		return revision.Script{}, fmt.Errorf("file %s: name does not match revision %q", name, s.Revision)
	}
	return s, nil
}

// LoadDir loads every migration script in dir. The returned slice carries
// no ordering guarantee; revision.NewGraph orders the chain.
func LoadDir(dir string) ([]revision.Script, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	scripts := make([]revision.Script, 0, len(names))
	for _, name := range names {
		s, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// LoadGraph loads a directory and builds the validated revision chain.
func LoadGraph(dir string) (*revision.Graph, error) {
	scripts, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return revision.NewGraph(scripts)
}

// RevisionFromFilename extracts the revision id prefix from a script
// filename ("<revision>_<slug>.yaml"), or "" when the name does not follow
// the convention.
func RevisionFromFilename(name string) string {
	base := filepath.Base(name)
	idx := strings.Index(base, "_")
	if idx <= 0 {
		return ""
	}
	rev := base[:idx]
	if len(rev) < 4 { // same sanity bar the CI wrappers always used
		return ""
	}
	return rev
}
