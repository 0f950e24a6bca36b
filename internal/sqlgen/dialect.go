package sqlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sqlshift/sqlshift/internal/revision"
)

// Dialect renders the closed schema-operation set into one SQL variant.
// Implemented once per supported dialect; rendering is pure string work so
// the same inputs always produce the same bytes.
type Dialect interface {
	Name() string
	QuoteIdent(name string) string
	ColumnType(abstract string) string
	CreateTable(op revision.CreateTable) string
	DropTable(op revision.DropTable) string
	AddColumn(op revision.AddColumn) string
	DropColumn(op revision.DropColumn) string
	CreateIndex(op revision.CreateIndex) string
	DropIndex(op revision.DropIndex) string
}

// UnsupportedDialectError reports a dialect name outside the recognized set.
type UnsupportedDialectError struct {
	Dialect string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported dialect %q (supported: %s)", e.Dialect, strings.Join(Supported(), ", "))
}

var dialects = map[string]Dialect{}

func register(d Dialect, aliases ...string) {
	dialects[d.Name()] = d
	for _, a := range aliases {
		dialects[a] = d
	}
}

// Lookup returns the dialect registered under name (case-insensitive).
func Lookup(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnsupportedDialectError{Dialect: name}
	}
	return d, nil
}

// Supported lists the canonical dialect names in stable order.
func Supported() []string {
	seen := map[string]bool{}
	names := make([]string, 0, len(dialects))
	for _, d := range dialects {
		if !seen[d.Name()] {
			seen[d.Name()] = true
			names = append(names, d.Name())
		}
	}
	sort.Strings(names)
	return names
}
