package plan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sqlshift/sqlshift/internal/database"
	"github.com/sqlshift/sqlshift/internal/revision"
	"github.com/sqlshift/sqlshift/internal/script"
	"github.com/sqlshift/sqlshift/internal/sqlgen"
)

// Planner resolves revision ranges and renders SQL across the configured
// logical databases. Databases are processed sequentially in declaration
// order and fail independently: one malformed history never aborts its
// siblings.
type Planner struct {
	// Databases is the multi-database configuration, in declaration order.
	// Empty means the single-database layout described by Fallback.
	Databases []database.Database
	// Fallback describes the unnamed default database.
	Fallback database.Database
}

// Result is the outcome for one logical database. Err is set when any step
// failed for that database; the other fields are then zero.
type Result struct {
	Database  string
	Dialect   string
	Range     revision.Range
	Revisions []string
	SQL       string
	Err       error
}

// Run selects the target databases and renders SQL for the resolved range
// in the requested direction.
func (p *Planner) Run(requested string, from, to revision.Pointer, dir revision.Direction) ([]Result, error) {
	targets, err := database.Select(p.Databases, p.Fallback, requested)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(targets))
	for _, db := range targets {
		results = append(results, p.runOne(db, from, to, dir))
	}
	return results, nil
}

func (p *Planner) runOne(db database.Database, from, to revision.Pointer, dir revision.Direction) Result {
	res := Result{Database: db.Name, Dialect: db.Dialect}
	g, err := loadGraph(db)
	if err != nil {
		res.Err = err
		return res
	}
	rng, err := g.Range(from, to)
	if err != nil {
		res.Err = err
		return res
	}
	res.Range = rng

	covered, err := g.Between(rng)
	if err != nil {
		res.Err = err
		return res
	}
	res.Revisions = make([]string, 0, len(covered))
	if dir == revision.DirectionDown {
		for i := len(covered) - 1; i >= 0; i-- {
			res.Revisions = append(res.Revisions, covered[i].Revision)
		}
	} else {
		for _, s := range covered {
			res.Revisions = append(res.Revisions, s.Revision)
		}
	}

	sql, err := sqlgen.RenderText(g, rng, db.Dialect, dir)
	if err != nil {
		res.Err = err
		res.Revisions = nil
		return res
	}
	res.SQL = sql
	return res
}

// loadGraph loads a database's script chain. A missing script directory is
// a configuration problem, not a filesystem accident, and is reported as
// such with the database name attached.
func loadGraph(db database.Database) (*revision.Graph, error) {
	g, err := script.LoadGraph(db.MigrateDir)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, &database.ConfigurationError{
			Database: db.Name,
			Reason:   fmt.Sprintf("migration directory %s does not exist", db.MigrateDir),
		}
	}
	return g, err
}

// Changed reports, per selected database, the revisions the working tree
// introduces relative to a checkout of the base revision rooted at
// baseRoot. A database with no script directory in the base checkout is
// treated as brand new: every revision counts as introduced.
func (p *Planner) Changed(requested, baseRoot string) ([]Result, error) {
	targets, err := database.Select(p.Databases, p.Fallback, requested)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(targets))
	for _, db := range targets {
		res := Result{Database: db.Name, Dialect: db.Dialect}
		g, err := loadGraph(db)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		baseDir := filepath.Join(baseRoot, filepath.FromSlash(db.MigrateDir))
		baseGraph := (*revision.Graph)(nil)
		if _, statErr := os.Stat(baseDir); statErr == nil {
			baseGraph, err = script.LoadGraph(baseDir)
			if err != nil {
				res.Err = err
				results = append(results, res)
				continue
			}
		}
		res.Revisions = g.ChangedSince(baseGraph)
		results = append(results, res)
	}
	return results, nil
}
