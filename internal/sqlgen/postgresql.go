package sqlgen

import (
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

type postgresqlDialect struct {
	ansi
}

func init() {
	d := &postgresqlDialect{}
	d.ansi = ansi{quoteIdent: d.QuoteIdent, columnType: d.ColumnType}
	register(d, "postgres")
}

func (*postgresqlDialect) Name() string { return "postgresql" }

func (*postgresqlDialect) QuoteIdent(name string) string { return doubleQuote(name) }

var postgresTypes = map[string]string{
	"integer":   "INTEGER",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"text":      "TEXT",
	"boolean":   "BOOLEAN",
	"timestamp": "TIMESTAMPTZ",
	"float":     "DOUBLE PRECISION",
	"json":      "JSONB",
	"uuid":      "UUID",
	"blob":      "BYTEA",
}

func (*postgresqlDialect) ColumnType(abstract string) string {
	if t, ok := postgresTypes[strings.ToLower(abstract)]; ok {
		return t
	}
	return strings.ToUpper(abstract)
}

func (d *postgresqlDialect) CreateTable(op revision.CreateTable) string { return d.createTable(op) }
func (d *postgresqlDialect) DropTable(op revision.DropTable) string     { return d.dropTable(op) }
func (d *postgresqlDialect) AddColumn(op revision.AddColumn) string     { return d.addColumn(op) }
func (d *postgresqlDialect) DropColumn(op revision.DropColumn) string   { return d.dropColumn(op) }
func (d *postgresqlDialect) CreateIndex(op revision.CreateIndex) string { return d.createIndex(op) }
func (d *postgresqlDialect) DropIndex(op revision.DropIndex) string     { return d.dropIndex(op) }
