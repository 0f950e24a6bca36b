package sqlgen

import (
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

type sqliteDialect struct {
	ansi
}

func init() {
	d := &sqliteDialect{}
	d.ansi = ansi{quoteIdent: d.QuoteIdent, columnType: d.ColumnType}
	register(d)
}

func (*sqliteDialect) Name() string { return "sqlite" }

func (*sqliteDialect) QuoteIdent(name string) string { return doubleQuote(name) }

var sqliteTypes = map[string]string{
	"integer":   "INTEGER",
	"bigint":    "INTEGER",
	"smallint":  "INTEGER",
	"text":      "TEXT",
	"boolean":   "BOOLEAN",
	"timestamp": "TIMESTAMP",
	"float":     "REAL",
	"json":      "TEXT",
	"uuid":      "TEXT",
	"blob":      "BLOB",
}

func (*sqliteDialect) ColumnType(abstract string) string {
	if t, ok := sqliteTypes[strings.ToLower(abstract)]; ok {
		return t
	}
	return strings.ToUpper(abstract)
}

func (d *sqliteDialect) CreateTable(op revision.CreateTable) string { return d.createTable(op) }
func (d *sqliteDialect) DropTable(op revision.DropTable) string     { return d.dropTable(op) }
func (d *sqliteDialect) AddColumn(op revision.AddColumn) string     { return d.addColumn(op) }
func (d *sqliteDialect) DropColumn(op revision.DropColumn) string   { return d.dropColumn(op) }
func (d *sqliteDialect) CreateIndex(op revision.CreateIndex) string { return d.createIndex(op) }
func (d *sqliteDialect) DropIndex(op revision.DropIndex) string     { return d.dropIndex(op) }
