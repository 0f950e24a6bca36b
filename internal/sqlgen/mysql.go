package sqlgen

import (
	"fmt"
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

type mysqlDialect struct {
	ansi
}

func init() {
	d := &mysqlDialect{}
	d.ansi = ansi{quoteIdent: d.QuoteIdent, columnType: d.ColumnType}
	register(d)
}

func (*mysqlDialect) Name() string { return "mysql" }

func (*mysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

var mysqlTypes = map[string]string{
	"integer":   "INT",
	"bigint":    "BIGINT",
	"smallint":  "SMALLINT",
	"text":      "TEXT",
	"boolean":   "TINYINT(1)",
	"timestamp": "DATETIME",
	"float":     "DOUBLE",
	"json":      "JSON",
	"uuid":      "CHAR(36)",
	"blob":      "BLOB",
}

func (*mysqlDialect) ColumnType(abstract string) string {
	if t, ok := mysqlTypes[strings.ToLower(abstract)]; ok {
		return t
	}
	return strings.ToUpper(abstract)
}

func (d *mysqlDialect) CreateTable(op revision.CreateTable) string { return d.createTable(op) }
func (d *mysqlDialect) DropTable(op revision.DropTable) string     { return d.dropTable(op) }
func (d *mysqlDialect) AddColumn(op revision.AddColumn) string     { return d.addColumn(op) }
func (d *mysqlDialect) DropColumn(op revision.DropColumn) string   { return d.dropColumn(op) }
func (d *mysqlDialect) CreateIndex(op revision.CreateIndex) string { return d.createIndex(op) }

// DropIndex needs the owning table on MySQL.
func (d *mysqlDialect) DropIndex(op revision.DropIndex) string {
	return fmt.Sprintf("DROP INDEX %s ON %s;", d.QuoteIdent(op.Name), d.QuoteIdent(op.Table))
}
