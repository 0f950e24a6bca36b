package sqlshift

import (
	"context"

	"github.com/sqlshift/sqlshift/internal/common"
	"github.com/sqlshift/sqlshift/internal/database"
	"github.com/sqlshift/sqlshift/internal/history"
	"github.com/sqlshift/sqlshift/internal/revision"
	"github.com/sqlshift/sqlshift/internal/script"
	"github.com/sqlshift/sqlshift/internal/sqlgen"
)

// Re-export commonly used types for public API

// Graph is the validated linear revision chain of one logical database.
type Graph = revision.Graph

// Script is one parsed migration unit.
type Script = revision.Script

// Range is a resolved revision interval inside one graph.
type Range = revision.Range

// Direction selects which operation list renders and in which order.
type Direction = revision.Direction

const (
	DirectionUp   = revision.DirectionUp
	DirectionDown = revision.DirectionDown
)

// Head and Base are the symbolic revision pointers.
const (
	Head = revision.Head
	Base = revision.Base
)

// Database binds a logical name to a script directory and connection target.
type Database = database.Database

// LoadGraph reads every migration script in dir and builds the chain.
func LoadGraph(dir string) (*Graph, error) { return script.LoadGraph(dir) }

// GenerateSQL renders the statements covered by from..to for the dialect.
func GenerateSQL(g *Graph, from, to revision.Pointer, dialect string, dir Direction) ([]string, error) {
	rng, err := g.Range(from, to)
	if err != nil {
		return nil, err
	}
	return sqlgen.Render(g, rng, dialect, dir)
}

// GenerateSQLText renders the range as one commented SQL document.
func GenerateSQLText(g *Graph, from, to revision.Pointer, dialect string, dir Direction) (string, error) {
	rng, err := g.Range(from, to)
	if err != nil {
		return "", err
	}
	return sqlgen.RenderText(g, rng, dialect, dir)
}

// SupportedDialects lists the registered dialect names.
func SupportedDialects() []string { return sqlgen.Supported() }

// SelectDatabases narrows the configured databases to the requested one, or
// all of them when requested is empty.
func SelectDatabases(configured []Database, fallback Database, requested string) ([]Database, error) {
	return database.Select(configured, fallback, requested)
}

// Logger is the structured logger used by the CLI and collaborator packages.
type Logger = common.Logger

type LogLevel = common.LogLevel

const (
	LogLevelError = common.LogLevelError
	LogLevelWarn  = common.LogLevelWarn
	LogLevelInfo  = common.LogLevelInfo
	LogLevelDebug = common.LogLevelDebug
)

// NewLogger creates a text logger writing to stderr.
func NewLogger(level LogLevel) *Logger { return common.NewLogger(level) }

// NewJSONLogger creates a JSON logger writing to stderr.
func NewJSONLogger(level LogLevel) *Logger { return common.NewJSONLogger(level) }

// SetDefaultLogger replaces the process-wide default logger.
func SetDefaultLogger(logger *Logger) { common.SetDefaultLogger(logger) }

// GetLogger returns the process-wide default logger.
func GetLogger() *Logger { return common.GetLogger() }

// HistoryReader reads the revision a deployed database currently sits at.
type HistoryReader = history.Reader

// OpenHistory connects to a deployed database and returns a revision reader.
func OpenHistory(ctx context.Context, dialect, dsn string) (HistoryReader, error) {
	return history.Open(ctx, dialect, dsn)
}
