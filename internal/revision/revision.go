package revision

// Pointer is a symbolic or explicit reference into a revision chain.
// The two symbolic values resolve against a concrete Graph; anything else
// is treated as an explicit revision identifier.
type Pointer = string

const (
	// Head points at the newest revision (no known successor).
	Head Pointer = "head"
	// Base points at the root revision (no parent).
	Base Pointer = "base"
)

// Direction of a migration walk.
type Direction string

const (
	DirectionUp   Direction = "upgrade"
	DirectionDown Direction = "downgrade"
)

// Script is one migration unit: a revision identifier, its parent, and the
// ordered schema operations for both walk directions. Scripts are parsed
// from disk and never mutated.
type Script struct {
	Revision     string
	DownRevision string // empty marks the root
	Description  string
	Up           []Operation
	Down         []Operation
}

// Range is a resolved pair of revisions inside one Graph. Direction records
// whether To is a descendant (upgrade) or an ancestor (downgrade) of From.
type Range struct {
	From      string
	To        string
	Direction Direction
}

// Empty reports whether the range covers no revisions at all.
func (r Range) Empty() bool { return r.From == r.To }
