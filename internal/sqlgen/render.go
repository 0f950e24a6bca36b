package sqlgen

import (
	"fmt"
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

// Render walks every script covered by rng (exclusive lower endpoint,
// inclusive upper) and returns the SQL statements for the requested
// direction: chain order with upgrade operations when dir is upgrade,
// reverse chain order with downgrade operations otherwise. An empty range
// yields an empty slice.
func Render(g *revision.Graph, rng revision.Range, dialectName string, dir revision.Direction) ([]string, error) {
	d, err := Lookup(dialectName)
	if err != nil {
		return nil, err
	}
	scripts, err := g.Between(rng)
	if err != nil {
		return nil, err
	}
	if dir == revision.DirectionDown {
		reversed := make([]revision.Script, len(scripts))
		for i, s := range scripts {
			reversed[len(scripts)-1-i] = s
		}
		scripts = reversed
	}
	stmts := make([]string, 0, len(scripts))
	for _, s := range scripts {
		ops := s.Up
		if dir == revision.DirectionDown {
			ops = s.Down
		}
		for _, op := range ops {
			stmt, err := renderOp(d, op)
			if err != nil {
				return nil, fmt.Errorf("revision %s: %w", s.Revision, err)
			}
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// RenderText renders the range as one SQL document with a comment header
// per revision, the format handed to the PR-comment collaborator. Output is
// byte-stable for identical inputs.
func RenderText(g *revision.Graph, rng revision.Range, dialectName string, dir revision.Direction) (string, error) {
	d, err := Lookup(dialectName)
	if err != nil {
		return "", err
	}
	scripts, err := g.Between(rng)
	if err != nil {
		return "", err
	}
	if dir == revision.DirectionDown {
		reversed := make([]revision.Script, len(scripts))
		for i, s := range scripts {
			reversed[len(scripts)-1-i] = s
		}
		scripts = reversed
	}
	var b strings.Builder
	for _, s := range scripts {
		b.WriteString("-- revision: ")
		b.WriteString(s.Revision)
		if s.Description != "" {
			b.WriteString(" (")
			b.WriteString(s.Description)
			b.WriteString(")")
		}
		b.WriteString("\n")
		ops := s.Up
		if dir == revision.DirectionDown {
			ops = s.Down
		}
		for _, op := range ops {
			stmt, err := renderOp(d, op)
			if err != nil {
				return "", fmt.Errorf("revision %s: %w", s.Revision, err)
			}
			b.WriteString(stmt)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func renderOp(d Dialect, op revision.Operation) (string, error) {
	switch o := op.(type) {
	case revision.CreateTable:
		return d.CreateTable(o), nil
	case revision.DropTable:
		return d.DropTable(o), nil
	case revision.AddColumn:
		return d.AddColumn(o), nil
	case revision.DropColumn:
		return d.DropColumn(o), nil
	case revision.CreateIndex:
		return d.CreateIndex(o), nil
	case revision.DropIndex:
		return d.DropIndex(o), nil
	case revision.RawSQL:
		return renderRawSQL(d, o), nil
	default:
		return "", fmt.Errorf("unknown schema operation %T", op)
	}
}

// renderRawSQL passes the fragment through unchanged, prefixing a warning
// comment when the fragment declares itself scoped to a different dialect.
func renderRawSQL(d Dialect, o revision.RawSQL) string {
	sql := strings.TrimRight(o.SQL, "\n")
	scope := strings.ToLower(strings.TrimSpace(o.Dialect))
	if sd, err := Lookup(scope); err == nil {
		scope = sd.Name()
	}
	if scope != "" && scope != d.Name() {
		return fmt.Sprintf("-- WARNING: raw SQL written for dialect %s, rendering for %s\n%s", scope, d.Name(), sql)
	}
	return sql
}
