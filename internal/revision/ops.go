package revision

// Operation is one dialect-agnostic schema change inside a migration
// script. The set is closed: dialect renderers dispatch over exactly these
// types and reject anything else at compile time.
type Operation interface {
	op()
}

// Column describes a single table column.
type Column struct {
	Name       string
	Type       string // abstract type name: integer, bigint, text, varchar(n), boolean, timestamp, ...
	Nullable   bool
	PrimaryKey bool
	Default    string // literal default expression, optional
}

type CreateTable struct {
	Name    string
	Columns []Column
}

type DropTable struct {
	Name string
}

type AddColumn struct {
	Table  string
	Column Column
}

type DropColumn struct {
	Table  string
	Column string
}

type CreateIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

type DropIndex struct {
	Name  string
	Table string // required by mysql, ignored elsewhere
}

// RawSQL passes a literal statement through unchanged. Dialect, when set,
// declares which dialect the fragment was written for.
type RawSQL struct {
	SQL     string
	Dialect string
}

func (CreateTable) op() {}
func (DropTable) op()   {}
func (AddColumn) op()   {}
func (DropColumn) op()  {}
func (CreateIndex) op() {}
func (DropIndex) op()   {}
func (RawSQL) op()      {}
