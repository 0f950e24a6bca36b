package sqlgen

import (
	"fmt"
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

// ansi holds the rendering shared by every dialect. Concrete dialects embed
// it and override quoting and type mapping where they differ.
type ansi struct {
	quoteIdent func(string) string
	columnType func(string) string
}

func doubleQuote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (a ansi) columnDef(c revision.Column) string {
	var b strings.Builder
	b.WriteString(a.quoteIdent(c.Name))
	b.WriteString(" ")
	b.WriteString(a.columnType(c.Type))
	if c.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
	}
	if !c.Nullable && !c.PrimaryKey {
		b.WriteString(" NOT NULL")
	}
	if c.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(c.Default)
	}
	return b.String()
}

func (a ansi) createTable(op revision.CreateTable) string {
	defs := make([]string, 0, len(op.Columns))
	for _, c := range op.Columns {
		defs = append(defs, "\t"+a.columnDef(c))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n);", a.quoteIdent(op.Name), strings.Join(defs, ",\n"))
}

func (a ansi) dropTable(op revision.DropTable) string {
	return fmt.Sprintf("DROP TABLE %s;", a.quoteIdent(op.Name))
}

func (a ansi) addColumn(op revision.AddColumn) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;", a.quoteIdent(op.Table), a.columnDef(op.Column))
}

func (a ansi) dropColumn(op revision.DropColumn) string {
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;", a.quoteIdent(op.Table), a.quoteIdent(op.Column))
}

func (a ansi) createIndex(op revision.CreateIndex) string {
	cols := make([]string, 0, len(op.Columns))
	for _, c := range op.Columns {
		cols = append(cols, a.quoteIdent(c))
	}
	unique := ""
	if op.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s);",
		unique, a.quoteIdent(op.Name), a.quoteIdent(op.Table), strings.Join(cols, ", "))
}

func (a ansi) dropIndex(op revision.DropIndex) string {
	return fmt.Sprintf("DROP INDEX %s;", a.quoteIdent(op.Name))
}
